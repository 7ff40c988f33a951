package exports

import "github.com/opst/synthstudio/api-types/jobs"

type Type string

const (
	HuggingFace Type = "huggingface"
	S3          Type = "s3"
)

// Detail is an export record, as listed in GET /exports/history.
type Detail struct {
	DisplayName       string      `json:"display_name"`
	DisplayExportName string      `json:"display_export_name"`
	JobCreatorName    string      `json:"job_creator_name,omitempty"`
	HFExportPath      string      `json:"hf_export_path,omitempty"`
	JobName           string      `json:"job_name,omitempty"`
	JobStatus         jobs.Status `json:"job_status"`
	Timestamp         string      `json:"timestamp"`
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

type HFConfig struct {
	RepoName      string `json:"hf_repo_name"`
	Username      string `json:"hf_username"`
	Token         string `json:"hf_token"`
	CommitMessage string `json:"hf_commit_message,omitempty"`
}

type S3Config struct {
	Bucket            string `json:"bucket"`
	Key               string `json:"key"`
	CreateIfNotExists bool   `json:"create_if_not_exists"`
}

// Request is the body of POST /export_results.
type Request struct {
	ExportType  []Type    `json:"export_type"`
	FilePath    string    `json:"file_path"`
	DisplayName string    `json:"display_name,omitempty"`
	OutputKey   string    `json:"output_key,omitempty"`
	OutputValue string    `json:"output_value,omitempty"`
	HFConfig    *HFConfig `json:"hf_config,omitempty"`
	S3Config    *S3Config `json:"s3_config,omitempty"`
}
