package evaluations

import "github.com/opst/synthstudio/api-types/jobs"

// Detail is an evaluation record, as listed in GET /evaluations/history.
type Detail struct {
	EvaluateFileName string      `json:"evaluate_file_name"`
	DisplayName      string      `json:"display_name"`
	ModelId          string      `json:"model_id"`
	InferenceType    string      `json:"inference_type,omitempty"`
	UseCase          string      `json:"use_case"`
	ImportPath       string      `json:"import_path,omitempty"`
	AverageScore     *float64    `json:"average_score,omitempty"`
	JobId            string      `json:"job_id,omitempty"`
	JobName          string      `json:"job_name,omitempty"`
	JobStatus        jobs.Status `json:"job_status"`
	JobCreatorName   string      `json:"job_creator_name,omitempty"`
	Timestamp        string      `json:"timestamp"`
}

func (d Detail) Name() string {
	return d.DisplayName
}

func (d Detail) Status() jobs.Status {
	return d.JobStatus
}

func (d Detail) Time() string {
	return d.Timestamp
}

func (d Detail) FileName() string {
	return d.EvaluateFileName
}
