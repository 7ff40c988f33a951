package synthesis

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/opst/synthstudio/api-types/jobs"
)

// DemoModeThreshold is the largest number of rows generated synchronously.
//
// Jobs requesting more rows than this are run as backend jobs.
const DemoModeThreshold = 25

// Technique is the generation technique understood by the backend.
type Technique string

const (
	SFT            Technique = "sft"
	CustomWorkflow Technique = "custom_workflow"
	ModelAlignment Technique = "model_alignment"
	Freeform       Technique = "freeform"
)

// Example is a prompt/completion pair.
type Example struct {
	Question string `json:"question"`
	Solution string `json:"solution"`
}

func (e Example) Equal(o Example) bool {
	return e.Question == o.Question && e.Solution == o.Solution
}

// Record is a free-form example row.
type Record map[string]any

func (r Record) Equal(o Record) bool {
	a, err := json.Marshal(r)
	if err != nil {
		return false
	}
	b, err := json.Marshal(o)
	if err != nil {
		return false
	}
	return bytes.Equal(a, b)
}

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	return maps.Clone(r)
}

// AsExample returns the record as Example, if it is shaped {question, solution}.
func (r Record) AsExample() (Example, bool) {
	if len(r) != 2 {
		return Example{}, false
	}
	q, qok := r["question"]
	s, sok := r["solution"]
	if !qok || !sok {
		return Example{}, false
	}
	return Example{Question: fmt.Sprint(q), Solution: fmt.Sprint(s)}, true
}

func FromExample(e Example) Record {
	return Record{"question": e.Question, "solution": e.Solution}
}

// ModelParameters are low-level generation parameters.
type ModelParameters struct {
	Temperature float64 `json:"temperature" yaml:"temperature" validate:"gte=0,lte=2"`
	TopP        float64 `json:"top_p" yaml:"top_p" validate:"gte=0,lte=1"`
	MinP        float64 `json:"min_p" yaml:"min_p" validate:"gte=0,lte=1"`
	TopK        int     `json:"top_k" yaml:"top_k" validate:"gte=0"`
	MaxTokens   int     `json:"max_tokens" yaml:"max_tokens" validate:"gte=1"`
}

func DefaultModelParameters() ModelParameters {
	return ModelParameters{
		Temperature: 0,
		TopP:        1,
		MinP:        0,
		TopK:        150,
		MaxTokens:   8192,
	}
}

func (p ModelParameters) Equal(o ModelParameters) bool {
	return p == o
}

// Request is the body of POST /synthesis/generate and /synthesis/freeform.
type Request struct {
	UseCase                  string           `json:"use_case,omitempty"`
	ModelId                  string           `json:"model_id"`
	NumQuestions             int              `json:"num_questions,omitempty"`
	Technique                Technique        `json:"technique,omitempty"`
	IsDemo                   bool             `json:"is_demo"`
	InferenceType            string           `json:"inference_type,omitempty"`
	CaiiEndpoint             string           `json:"caii_endpoint,omitempty"`
	OpenAICompatibleEndpoint string           `json:"openai_compatible_endpoint,omitempty"`
	Topics                   []string         `json:"topics,omitempty"`
	DocPaths                 []string         `json:"doc_paths,omitempty"`
	InputPath                []string         `json:"input_path,omitempty"`
	InputKey                 string           `json:"input_key,omitempty"`
	OutputKey                string           `json:"output_key,omitempty"`
	OutputValue              string           `json:"output_value,omitempty"`
	Examples                 []Example        `json:"examples,omitempty"`
	ExampleCustom            []any            `json:"example_custom,omitempty"`
	ExamplePath              string           `json:"example_path,omitempty"`
	Schema                   string           `json:"schema,omitempty"`
	CustomPrompt             string           `json:"custom_prompt,omitempty"`
	DisplayName              string           `json:"display_name,omitempty"`
	MaxConcurrentTopics      int              `json:"max_concurrent_topics,omitempty"`
	ModelParams              *ModelParameters `json:"model_params,omitempty"`
}

// Results are rows generated synchronously.
//
// The backend answers a map from topic to rows for topic based generation,
// and a flat list of rows for the other cases.
type Results struct {
	ByTopic map[string][]Record
	Rows    []Record
}

func (r *Results) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	switch b[0] {
	case '{':
		return json.Unmarshal(b, &r.ByTopic)
	case '[':
		return json.Unmarshal(b, &r.Rows)
	default:
		return fmt.Errorf("results: unexpected json: %s", string(b))
	}
}

func (r Results) MarshalJSON() ([]byte, error) {
	if r.ByTopic != nil {
		return json.Marshal(r.ByTopic)
	}
	if r.Rows != nil {
		return json.Marshal(r.Rows)
	}
	return []byte("null"), nil
}

// Topics returns topics in the results, in order of appearance in the request when given.
func (r Results) Topics(requested []string) []string {
	seen := map[string]struct{}{}
	ret := []string{}
	for _, t := range requested {
		if _, ok := r.ByTopic[t]; ok {
			ret = append(ret, t)
			seen[t] = struct{}{}
		}
	}
	rest := []string{}
	for t := range r.ByTopic {
		if _, ok := seen[t]; !ok {
			rest = append(rest, t)
		}
	}
	slices.Sort(rest)
	return append(ret, rest...)
}

func (r Results) Len() int {
	n := len(r.Rows)
	for _, rows := range r.ByTopic {
		n += len(rows)
	}
	return n
}

type ExportPath struct {
	Local string `json:"local,omitempty"`
	HF    string `json:"hf,omitempty"`
}

// Result is a response of job submission.
//
// For demo mode, Results are set. Otherwise, the job reference is set.
type Result struct {
	jobs.Reference
	Status     string     `json:"status,omitempty"`
	Results    Results    `json:"results"`
	ExportPath ExportPath `json:"export_path"`
}

// IsJob reports whether the result is an acknowledgment of an asynchronous job.
func (r Result) IsJob() bool {
	return r.JobId != "" || r.JobName != ""
}

func (r Result) Equal(o Result) bool {
	if !r.Reference.Equal(o.Reference) || r.Status != o.Status || r.ExportPath != o.ExportPath {
		return false
	}
	if !sameRows(r.Results.Rows, o.Results.Rows) {
		return false
	}
	if len(r.Results.ByTopic) != len(o.Results.ByTopic) {
		return false
	}
	for k, v := range r.Results.ByTopic {
		w, ok := o.Results.ByTopic[k]
		if !ok || !sameRows(v, w) {
			return false
		}
	}
	return true
}

// CustomPromptRequest is the body of POST /create_custom_prompt.
type CustomPromptRequest struct {
	ModelId       string `json:"model_id"`
	InferenceType string `json:"inference_type,omitempty"`
	CaiiEndpoint  string `json:"caii_endpoint,omitempty"`
	CustomPrompt  string `json:"custom_prompt"`
	UseCase       string `json:"use_case,omitempty"`
	ExamplePath   string `json:"example_path,omitempty"`
}

// DatasetSizeRequest is the body of POST /json/dataset_size.
type DatasetSizeRequest struct {
	InputPath  []string `json:"input_path"`
	InputKey   string   `json:"input_key,omitempty"`
	InputValue string   `json:"input_value,omitempty"`
	OutputKey  string   `json:"output_key,omitempty"`
}

// DatasetSize is a number of rows, which the backend sends as a number or a numeric string.
type DatasetSize int

func (d *DatasetSize) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	var n json.Number
	if len(b) > 0 && b[0] == '{' {
		wrapped := struct {
			DatasetSize *DatasetSize `json:"dataset_size"`
		}{}
		if err := json.Unmarshal(b, &wrapped); err != nil {
			return err
		}
		if wrapped.DatasetSize == nil {
			return fmt.Errorf(`required field missing: "dataset_size"`)
		}
		*d = *wrapped.DatasetSize
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		n = json.Number(s)
	} else {
		n = json.Number(string(b))
	}
	v, err := strconv.Atoi(n.String())
	if err != nil {
		return fmt.Errorf("dataset size is not a number: %w", err)
	}
	*d = DatasetSize(v)
	return nil
}

// ContentRequest is the body of POST /json/get_content.
type ContentRequest struct {
	Path string `json:"path"`
}

// EvaluationRequest is the body of POST /synthesis/evaluate.
type EvaluationRequest struct {
	UseCase       string    `json:"use_case"`
	Technique     Technique `json:"technique,omitempty"`
	ModelId       string    `json:"model_id"`
	ImportPath    string    `json:"import_path"`
	ImportType    string    `json:"import_type"`
	IsDemo        bool      `json:"is_demo"`
	InferenceType string    `json:"inference_type,omitempty"`
	CaiiEndpoint  string    `json:"caii_endpoint,omitempty"`
	CustomPrompt  string    `json:"custom_prompt,omitempty"`
	DisplayName   string    `json:"display_name,omitempty"`
	OutputKey     string    `json:"output_key,omitempty"`
	OutputValue   string    `json:"output_value,omitempty"`
}

// sameRows reports whether a and b have the same rows, ignoring order.
func sameRows(a, b []Record) bool {
	if len(a) != len(b) {
		return false
	}
	rest := slices.Clone(b)
	for _, x := range a {
		i := slices.IndexFunc(rest, x.Equal)
		if i < 0 {
			return false
		}
		rest = slices.Delete(rest, i, i+1)
	}
	return true
}
