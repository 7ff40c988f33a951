package wizard

import (
	"github.com/opst/synthstudio/api-types/datasets"
	"github.com/opst/synthstudio/api-types/synthesis"
)

// FromDataset makes a configuration to generate the dataset again.
//
// Fields the dataset does not record take defaults of a new form.
// Examples of the dataset are returned separately, since they take priority
// over uploaded files and use case defaults.
func FromDataset(d datasets.Detail) (JobConfiguration, []synthesis.Record) {
	c := NewJobConfiguration()

	c.DisplayName = d.DisplayName
	c.Provider = d.InferenceType
	c.ModelId = d.ModelId
	c.CaiiEndpoint = d.CaiiEndpoint
	c.UseCase = d.UseCase
	c.CustomPrompt = d.CustomPrompt
	c.Schema = d.Schema

	switch d.Technique {
	case synthesis.CustomWorkflow:
		c.WorkflowType = WorkflowCustom
	case synthesis.Freeform:
		c.WorkflowType = WorkflowFreeform
	default:
		c.WorkflowType = WorkflowSFT
	}

	if 0 < d.NumQuestions {
		c.NumQuestions = d.NumQuestions
	}
	if topics := d.Topics.Value; topics != nil {
		c.Topics = append([]string{}, topics...)
	}

	paths := d.DocPaths
	if c.WorkflowType == WorkflowCustom && 0 < len(d.InputPaths) {
		paths = d.InputPaths
	}
	for _, p := range paths {
		c.DocPaths = append(c.DocPaths, NewDocPath(p))
	}

	c.InputKey = d.InputKey
	if d.OutputKey != "" {
		c.OutputKey = d.OutputKey
	}
	if d.OutputValue != "" {
		c.OutputValue = d.OutputValue
	}
	if p := d.ModelParameters.Value; p != nil {
		c.ModelParameters = *p
	}

	examples := make([]synthesis.Record, 0, len(d.Examples.Value))
	for _, r := range d.Examples.Value {
		examples = append(examples, r.Clone())
	}
	return c, examples
}
