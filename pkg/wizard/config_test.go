package wizard_test

import (
	"testing"

	"github.com/opst/synthstudio/api-types/datasets"
	"github.com/opst/synthstudio/api-types/synthesis"
	"github.com/opst/synthstudio/pkg/wizard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestJobConfiguration_UnmarshalYAML(t *testing.T) {
	c := wizard.NewJobConfiguration()
	err := yaml.Unmarshal([]byte(`
display_name: qa from manuals
inference_type: openai
model_id: gpt-4o
workflow_type: sft
use_case: custom
doc_paths:
  - docs/manual.pdf
  - value: docs/guide.docx
    label: Guide
model_parameters:
  temperature: 0.7
`), &c)
	require.NoError(t, err)

	assert.Equal(t, wizard.WorkflowSFT, c.WorkflowType)
	assert.Equal(t, []wizard.DocPath{
		{Value: "docs/manual.pdf", Label: "manual.pdf"},
		{Value: "docs/guide.docx", Label: "Guide"},
	}, c.DocPaths)
	assert.Equal(t, 0.7, c.ModelParameters.Temperature)
	assert.Equal(t, 8192, c.ModelParameters.MaxTokens, "defaults are kept")
	assert.Equal(t, 20, c.NumQuestions)

	err = yaml.Unmarshal([]byte("workflow_type: unknown\n"), &c)
	assert.ErrorIs(t, err, wizard.ErrUnknownWorkflow)
}

func TestFromDataset(t *testing.T) {
	params := synthesis.ModelParameters{Temperature: 1, TopP: 0.9, TopK: 50, MaxTokens: 1024}
	d := datasets.Detail{
		GenerateFileName: "qa_pairs_1.json",
		DisplayName:      "previous",
		ModelId:          "gpt-4o",
		InferenceType:    "openai",
		UseCase:          "custom",
		Technique:        synthesis.CustomWorkflow,
		InputPaths:       datasets.Paths{"data/input.json"},
		InputKey:         "Prompt",
		CustomPrompt:     "answer",
		Examples: datasets.Embedded[[]synthesis.Record]{
			Value: []synthesis.Record{{"question": "q", "solution": "s"}},
		},
		ModelParameters: datasets.Embedded[*synthesis.ModelParameters]{Value: &params},
	}

	c, examples := wizard.FromDataset(d)

	assert.Equal(t, "previous", c.DisplayName)
	assert.Equal(t, "openai", c.Provider)
	assert.Equal(t, wizard.WorkflowCustom, c.WorkflowType)
	assert.Equal(t, []wizard.DocPath{{Value: "data/input.json", Label: "input.json"}}, c.DocPaths)
	assert.Equal(t, params, c.ModelParameters)
	assert.Equal(t, "Prompt", c.InputKey)
	assert.Equal(t, "Prompt", c.OutputKey)
	assert.Empty(t, c.Examples)
	assert.Equal(t, []synthesis.Record{{"question": "q", "solution": "s"}}, examples)
}
