package wizard

import (
	"errors"
	"fmt"
	"path"
	"slices"

	"github.com/opst/synthstudio/api-types/synthesis"
	"gopkg.in/yaml.v3"
)

var ErrUnknownWorkflow = errors.New("unknown workflow type")

// Workflow is a kind of generation job.
type Workflow string

const (
	WorkflowNone     Workflow = ""
	WorkflowCustom   Workflow = "custom"
	WorkflowFreeform Workflow = "freeform"
	WorkflowSFT      Workflow = "supervised-fine-tuning"
)

// ParseWorkflow reads a workflow type. Technique names are also accepted.
func ParseWorkflow(s string) (Workflow, error) {
	switch s {
	case "":
		return WorkflowNone, nil
	case string(WorkflowCustom), string(synthesis.CustomWorkflow):
		return WorkflowCustom, nil
	case string(WorkflowFreeform):
		return WorkflowFreeform, nil
	case string(WorkflowSFT), string(synthesis.SFT):
		return WorkflowSFT, nil
	}
	return WorkflowNone, fmt.Errorf("%w: %s", ErrUnknownWorkflow, s)
}

func (w *Workflow) UnmarshalText(b []byte) error {
	p, err := ParseWorkflow(string(b))
	if err != nil {
		return err
	}
	*w = p
	return nil
}

// Technique is the technique sent to the backend for the workflow.
func (w Workflow) Technique() synthesis.Technique {
	switch w {
	case WorkflowCustom:
		return synthesis.CustomWorkflow
	case WorkflowFreeform:
		return synthesis.Freeform
	case WorkflowSFT:
		return synthesis.SFT
	}
	return ""
}

// DocPath is a file in the project selected as an input of generation.
type DocPath struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// NewDocPath makes a DocPath labeled by the base name of the path.
func NewDocPath(p string) DocPath {
	return DocPath{Value: p, Label: path.Base(p)}
}

// UnmarshalYAML accepts a plain path as well as {value, label}.
func (d *DocPath) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*d = NewDocPath(node.Value)
		return nil
	}
	type plain DocPath
	p := plain{}
	if err := node.Decode(&p); err != nil {
		return err
	}
	if p.Label == "" {
		p.Label = path.Base(p.Value)
	}
	*d = DocPath(p)
	return nil
}

// JobConfiguration is the whole input of the wizard.
type JobConfiguration struct {
	DisplayName string `json:"display_name" yaml:"display_name"`

	// Provider is the model provider, sent as inference_type.
	Provider                 string `json:"inference_type" yaml:"inference_type"`
	ModelId                  string `json:"model_id" yaml:"model_id"`
	CaiiEndpoint             string `json:"caii_endpoint,omitempty" yaml:"caii_endpoint,omitempty"`
	OpenAICompatibleEndpoint string `json:"openai_compatible_endpoint,omitempty" yaml:"openai_compatible_endpoint,omitempty"`

	WorkflowType Workflow `json:"workflow_type" yaml:"workflow_type"`
	UseCase      string   `json:"use_case" yaml:"use_case"`

	DocPaths    []DocPath `json:"doc_paths,omitempty" yaml:"doc_paths,omitempty"`
	InputKey    string    `json:"input_key,omitempty" yaml:"input_key,omitempty"`
	OutputKey   string    `json:"output_key,omitempty" yaml:"output_key,omitempty"`
	OutputValue string    `json:"output_value,omitempty" yaml:"output_value,omitempty"`

	Examples    []synthesis.Record `json:"examples,omitempty" yaml:"examples,omitempty"`
	ExamplePath string             `json:"example_path,omitempty" yaml:"example_path,omitempty"`

	Topics                   []string `json:"topics,omitempty" yaml:"topics,omitempty"`
	NumQuestions             int      `json:"num_questions" yaml:"num_questions"`
	CustomPrompt             string   `json:"custom_prompt" yaml:"custom_prompt"`
	CustomPromptInstructions string   `json:"custom_prompt_instructions,omitempty" yaml:"custom_prompt_instructions,omitempty"`
	Schema                   string   `json:"schema,omitempty" yaml:"schema,omitempty"`

	ModelParameters     synthesis.ModelParameters `json:"model_parameters" yaml:"model_parameters"`
	MaxConcurrentTopics int                       `json:"max_concurrent_topics" yaml:"max_concurrent_topics"`

	// TotalDatasetSize is the number of input rows of the custom workflow, reported by the backend.
	TotalDatasetSize *int `json:"total_dataset_size,omitempty" yaml:"-"`

	// DatasetSize is the number of rows generated from documents, reported by the backend.
	DatasetSize *int `json:"dataset_size,omitempty" yaml:"-"`
}

// NewJobConfiguration returns a configuration with defaults of a new form.
func NewJobConfiguration() JobConfiguration {
	return JobConfiguration{
		Topics:              []string{},
		NumQuestions:        20,
		OutputKey:           "Prompt",
		OutputValue:         "Completion",
		ModelParameters:     synthesis.DefaultModelParameters(),
		MaxConcurrentTopics: 5,
	}
}

// Clone returns a deep copy.
func (c JobConfiguration) Clone() JobConfiguration {
	c.DocPaths = slices.Clone(c.DocPaths)
	c.Topics = slices.Clone(c.Topics)
	if c.Examples != nil {
		ex := make([]synthesis.Record, len(c.Examples))
		for i, r := range c.Examples {
			ex[i] = cloneRecord(r)
		}
		c.Examples = ex
	}
	c.TotalDatasetSize = cloneInt(c.TotalDatasetSize)
	c.DatasetSize = cloneInt(c.DatasetSize)
	return c
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneRecord(r synthesis.Record) synthesis.Record {
	if r == nil {
		return nil
	}
	ret := make(synthesis.Record, len(r))
	for k, v := range r {
		ret[k] = cloneValue(v)
	}
	return ret
}

func cloneValue(v any) any {
	switch x := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(x))
		for k, e := range x {
			m[k] = cloneValue(e)
		}
		return m
	case synthesis.Record:
		return cloneRecord(x)
	case []any:
		s := make([]any, len(x))
		for i, e := range x {
			s[i] = cloneValue(e)
		}
		return s
	default:
		return v
	}
}

func docPathsEqual(a, b []DocPath) bool {
	return slices.Equal(a, b)
}

func recordsEqual(a, b []synthesis.Record) bool {
	return slices.EqualFunc(a, b, synthesis.Record.Equal)
}
