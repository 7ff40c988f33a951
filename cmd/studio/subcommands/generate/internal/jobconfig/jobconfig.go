// Package jobconfig reads job configuration files of "studio generate",
// and completes them with defaults of the studioenv and the backend.
package jobconfig

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/opst/synthstudio/api-types/models"
	"github.com/opst/synthstudio/api-types/synthesis"
	"github.com/opst/synthstudio/api-types/usecases"
	"github.com/opst/synthstudio/cmd/studio/env"
	"github.com/opst/synthstudio/pkg/wizard"
	"gopkg.in/yaml.v3"
)

var ErrInvalidJobConfig = errors.New("invalid job configuration")

// Load reads the yaml file over base.
//
// Fields not in the file keep values of base.
func Load(path string, base wizard.JobConfiguration) (wizard.JobConfiguration, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return wizard.JobConfiguration{}, err
	}
	c := base.Clone()
	if err := yaml.Unmarshal(buf, &c); err != nil {
		return wizard.JobConfiguration{}, fmt.Errorf("%w: %s: %w", ErrInvalidJobConfig, path, err)
	}
	return c, nil
}

// WithDefaults fills empty fields of c with the studioenv.
func WithDefaults(c wizard.JobConfiguration, d env.GenerateDefaults) wizard.JobConfiguration {
	if c.Provider == "" {
		c.Provider = d.InferenceType
	}
	if c.Provider == "" {
		c.Provider = d.ModelType
	}
	if c.ModelId == "" {
		c.ModelId = d.ModelId
	}
	if c.CaiiEndpoint == "" {
		c.CaiiEndpoint = d.CaiiEndpoint
	}
	if c.OpenAICompatibleEndpoint == "" {
		c.OpenAICompatibleEndpoint = d.OpenAICompatibleEndpoint
	}
	if c.WorkflowType == wizard.WorkflowNone && d.WorkflowType != "" {
		if w, err := wizard.ParseWorkflow(d.WorkflowType); err == nil {
			c.WorkflowType = w
		}
	}
	if c.UseCase == "" {
		c.UseCase = d.UseCase
	}
	if c.NumQuestions <= 0 && 0 < d.NumQuestions {
		c.NumQuestions = d.NumQuestions
	}
	if c.MaxConcurrentTopics <= 0 && 0 < d.MaxConcurrentTopics {
		c.MaxConcurrentTopics = d.MaxConcurrentTopics
	}
	return c
}

// ProvidesExamples reports whether default examples are fetched for c
// when it has no examples by itself.
func ProvidesExamples(c wizard.JobConfiguration) bool {
	return c.ExamplePath != "" || (c.UseCase != "" && c.UseCase != usecases.Custom)
}

// ProvidesPrompt reports whether a prompt is fetched for c
// when it has no prompt by itself.
func ProvidesPrompt(c wizard.JobConfiguration) bool {
	return c.CustomPromptInstructions != "" || (c.UseCase != "" && c.UseCase != usecases.Custom)
}

// Validate checks gates of c which can be checked without the backend.
//
// Gates of Examples and Prompt are skipped when the backend will fill them.
func Validate(c wizard.JobConfiguration) error {
	errs := []error{}
	if err := wizard.Check(wizard.Configure, c); err != nil {
		errs = append(errs, err)
	}
	if len(c.Examples) == 0 && !ProvidesExamples(c) {
		if err := wizard.Check(wizard.Examples, c); err != nil {
			errs = append(errs, err)
		}
	}
	if c.CustomPrompt == "" && !ProvidesPrompt(c) {
		if err := wizard.Check(wizard.Prompt, c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Backend is what Complete needs from the backend.
type Backend interface {
	GetTopics(ctx context.Context, useCase string) ([]string, error)
	GetPrompt(ctx context.Context, useCase string) (string, error)
	CreateCustomPrompt(ctx context.Context, req synthesis.CustomPromptRequest) (string, error)
	GetSchema(ctx context.Context) (string, error)
	GetModels(ctx context.Context) (models.Catalog, error)
	DatasetSize(ctx context.Context, req synthesis.DatasetSizeRequest) (int, error)
}

// Complete fills fields the configuration leaves empty with what the backend suggests:
// topics, prompt, and SQL schema of the use case.
// For the custom workflow, the number of input rows is asked to the backend.
//
// Unknown models are logged but not rejected,
// since custom endpoints may serve models out of the catalog.
func Complete(ctx context.Context, logger *log.Logger, backend Backend, store *wizard.Store) error {
	c := store.Snapshot().JobConfiguration
	defaultable := c.UseCase != "" && c.UseCase != usecases.Custom

	if catalog, err := backend.GetModels(ctx); err != nil {
		logger.Printf("failed to get models, skip checking model_id: %s", err)
	} else if c.Provider != "" && !catalog.Has(c.Provider, c.ModelId) {
		logger.Printf("WARNING: model %s is not known for %s", c.ModelId, c.Provider)
	}

	if wizard.SelectIsTopicBased(c) && len(c.Topics) == 0 && defaultable {
		topics, err := backend.GetTopics(ctx, c.UseCase)
		if err != nil {
			return fmt.Errorf("failed to get topics of %s: %w", c.UseCase, err)
		}
		logger.Printf("topics are not given. use defaults of %s: %v", c.UseCase, topics)
		store.Update(func(c wizard.JobConfiguration) wizard.JobConfiguration {
			c.Topics = topics
			return c
		})
	}

	if c.CustomPrompt == "" {
		var prompt string
		var err error
		switch {
		case c.CustomPromptInstructions != "":
			prompt, err = backend.CreateCustomPrompt(ctx, synthesis.CustomPromptRequest{
				ModelId:       c.ModelId,
				InferenceType: c.Provider,
				CaiiEndpoint:  c.CaiiEndpoint,
				CustomPrompt:  c.CustomPromptInstructions,
				UseCase:       c.UseCase,
				ExamplePath:   c.ExamplePath,
			})
		case defaultable:
			prompt, err = backend.GetPrompt(ctx, c.UseCase)
		}
		if err != nil {
			return fmt.Errorf("failed to get prompt: %w", err)
		}
		if prompt != "" {
			store.Update(func(c wizard.JobConfiguration) wizard.JobConfiguration {
				c.CustomPrompt = prompt
				return c
			})
		}
	}

	if wizard.SelectNeedsSchema(c) && c.Schema == "" {
		schema, err := backend.GetSchema(ctx)
		if err != nil {
			return fmt.Errorf("failed to get SQL schema: %w", err)
		}
		store.Update(func(c wizard.JobConfiguration) wizard.JobConfiguration {
			c.Schema = schema
			return c
		})
	}

	if c.WorkflowType == wizard.WorkflowCustom && 0 < len(c.DocPaths) {
		size, err := backend.DatasetSize(ctx, synthesis.DatasetSizeRequest{
			InputPath: wizard.SelectDocPathValues(c),
			InputKey:  c.InputKey,
			OutputKey: c.OutputKey,
		})
		if err != nil {
			return fmt.Errorf("failed to count input rows: %w", err)
		}
		store.Update(func(c wizard.JobConfiguration) wizard.JobConfiguration {
			c.TotalDatasetSize = &size
			return c
		})
	}

	return nil
}

// Template is a job configuration file for the workflow, with defaults of the studioenv.
func Template(w wizard.Workflow, d env.GenerateDefaults) ([]byte, error) {
	c := WithDefaults(wizard.NewJobConfiguration(), d)
	if w != wizard.WorkflowNone {
		c.WorkflowType = w
	}
	if c.DisplayName == "" {
		c.DisplayName = "my dataset"
	}
	switch c.WorkflowType {
	case wizard.WorkflowCustom:
		c.UseCase = usecases.Custom
		c.DocPaths = []wizard.DocPath{wizard.NewDocPath("data/input.json")}
		c.InputKey = "prompt"
		c.CustomPromptInstructions = "describe how rows should be generated from inputs."
	case wizard.WorkflowFreeform:
		c.Examples = []synthesis.Record{{"field": "value"}}
	}
	return yaml.Marshal(c)
}
