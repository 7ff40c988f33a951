package submission

import (
	"github.com/opst/synthstudio/api-types/synthesis"
	"github.com/opst/synthstudio/api-types/usecases"
	"github.com/opst/synthstudio/pkg/wizard"
)

const (
	EndpointGenerate = "synthesis/generate"
	EndpointFreeform = "synthesis/freeform"
)

// Payload is a request to be posted to the endpoint.
type Payload struct {
	Endpoint string            `json:"endpoint"`
	Request  synthesis.Request `json:"request"`
}

// EndpointOf returns the generation API path for the workflow.
func EndpointOf(w wizard.Workflow) string {
	if w == wizard.WorkflowFreeform {
		return EndpointFreeform
	}
	return EndpointGenerate
}

// Build makes the request of the configuration.
func Build(c wizard.JobConfiguration) Payload {
	params := c.ModelParameters
	req := synthesis.Request{
		UseCase:                  c.UseCase,
		ModelId:                  c.ModelId,
		NumQuestions:             c.NumQuestions,
		Technique:                wizard.SelectTechnique(c),
		IsDemo:                   wizard.SelectIsDemo(c),
		InferenceType:            c.Provider,
		CaiiEndpoint:             c.CaiiEndpoint,
		OpenAICompatibleEndpoint: c.OpenAICompatibleEndpoint,
		Topics:                   nonEmpty(c.Topics),
		InputKey:                 c.InputKey,
		OutputKey:                c.OutputKey,
		OutputValue:              c.OutputValue,
		ExamplePath:              c.ExamplePath,
		CustomPrompt:             c.CustomPrompt,
		DisplayName:              c.DisplayName,
		MaxConcurrentTopics:      c.MaxConcurrentTopics,
		ModelParams:              &params,
	}
	if wizard.SelectNeedsSchema(c) {
		req.Schema = c.Schema
	}

	paths := nonEmpty(wizard.SelectDocPathValues(c))

	switch c.WorkflowType {
	case wizard.WorkflowCustom:
		req.InputPath = paths
		req.UseCase = usecases.Custom
		req.Topics = nil
		req.ExampleCustom = solutions(c.Examples)
	case wizard.WorkflowFreeform:
		req.DocPaths = paths
		req.ExampleCustom = rows(c.Examples)
	default:
		req.DocPaths = paths
		req.Examples = qaPairs(c.Examples)
	}

	return Payload{Endpoint: EndpointOf(c.WorkflowType), Request: req}
}

func nonEmpty[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return s
}

// solutions takes "solution" of each row. Rows without it are sent as they are.
func solutions(examples []synthesis.Record) []any {
	if len(examples) == 0 {
		return nil
	}
	ret := make([]any, 0, len(examples))
	for _, r := range examples {
		if s, ok := r["solution"]; ok {
			ret = append(ret, s)
			continue
		}
		ret = append(ret, map[string]any(r.Clone()))
	}
	return ret
}

func rows(examples []synthesis.Record) []any {
	if len(examples) == 0 {
		return nil
	}
	ret := make([]any, 0, len(examples))
	for _, r := range examples {
		ret = append(ret, map[string]any(r.Clone()))
	}
	return ret
}

func qaPairs(examples []synthesis.Record) []synthesis.Example {
	ret := []synthesis.Example{}
	for _, r := range examples {
		if e, ok := r.AsExample(); ok {
			ret = append(ret, e)
		}
	}
	return nonEmpty(ret)
}
