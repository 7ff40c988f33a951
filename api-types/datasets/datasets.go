package datasets

import (
	"bytes"
	"encoding/json"

	"github.com/opst/synthstudio/api-types/jobs"
	"github.com/opst/synthstudio/api-types/synthesis"
)

// Detail is a dataset record, as listed in GET /generations/history
// and returned by GET /generations/{file}.
type Detail struct {
	GenerateFileName string                               `json:"generate_file_name"`
	DisplayName      string                               `json:"display_name"`
	ModelId          string                               `json:"model_id"`
	InferenceType    string                               `json:"inference_type,omitempty"`
	CaiiEndpoint     string                               `json:"caii_endpoint,omitempty"`
	UseCase          string                               `json:"use_case"`
	Technique        synthesis.Technique                  `json:"technique,omitempty"`
	NumQuestions     int                                  `json:"num_questions"`
	TotalCount       int                                  `json:"total_count"`
	CompletedRows    *int                                 `json:"completed_rows,omitempty"`
	Topics           Embedded[[]string]                   `json:"topics,omitempty"`
	Examples         Embedded[[]synthesis.Record]         `json:"examples,omitempty"`
	CustomPrompt     string                               `json:"custom_prompt,omitempty"`
	DocPaths         Paths                                `json:"doc_paths,omitempty"`
	InputPaths       Paths                                `json:"input_paths,omitempty"`
	InputKey         string                               `json:"input_key,omitempty"`
	OutputKey        string                               `json:"output_key,omitempty"`
	OutputValue      string                               `json:"output_value,omitempty"`
	Schema           string                               `json:"schema,omitempty"`
	ModelParameters  Embedded[*synthesis.ModelParameters] `json:"model_parameters,omitempty"`
	JobId            string                               `json:"job_id,omitempty"`
	JobName          string                               `json:"job_name,omitempty"`
	JobStatus        jobs.Status                          `json:"job_status"`
	JobCreatorName   string                               `json:"job_creator_name,omitempty"`
	Timestamp        string                               `json:"timestamp"`
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
	return d.GenerateFileName
}

// Progress returns completed rows and total rows of the generation.
//
// When the backend does not report completed rows, it returns total rows
// as completed for succeeded jobs, and 0 for others.
func (d Detail) Progress() (completed int, total int) {
	total = d.TotalCount
	if d.CompletedRows != nil {
		return *d.CompletedRows, total
	}
	if d.JobStatus == jobs.Succeeded || d.JobStatus == jobs.None {
		return total, total
	}
	return 0, total
}

// Embedded is a value which the backend sends as JSON or as a string containing JSON.
type Embedded[T any] struct {
	Value T
}

func (e *Embedded[T]) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s == "" || s == "null" {
			return nil
		}
		return json.Unmarshal([]byte(s), &e.Value)
	}
	return json.Unmarshal(b, &e.Value)
}

func (e Embedded[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Value)
}

// Paths is a list of file paths in a dataset record.
//
// The backend may send it as a plain string for records created by old versions.
// Such a value is not usable as paths, and is read as an empty list.
type Paths []string

func (p *Paths) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		*p = Paths{}
		return nil
	}
	var v []string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*p = v
	return nil
}

// Content is the response of GET /dataset_details/{file}: generated rows.
type Content struct {
	GenerateFileName string             `json:"generate_file_name,omitempty"`
	Rows             []synthesis.Record `json:"-"`
}

func (c *Content) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '[' {
		return json.Unmarshal(b, &c.Rows)
	}
	v := struct {
		GenerateFileName string             `json:"generate_file_name"`
		Rows             []synthesis.Record `json:"data"`
	}{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	c.GenerateFileName = v.GenerateFileName
	c.Rows = v.Rows
	return nil
}

func (c Content) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		GenerateFileName string             `json:"generate_file_name,omitempty"`
		Rows             []synthesis.Record `json:"data"`
	}{GenerateFileName: c.GenerateFileName, Rows: c.Rows})
}
