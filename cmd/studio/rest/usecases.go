package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/opst/synthstudio/api-types/models"
	"github.com/opst/synthstudio/api-types/synthesis"
	"github.com/opst/synthstudio/api-types/usecases"
	"github.com/opst/synthstudio/pkg/utils/retry"
)

func (c *client) ListUseCases(ctx context.Context) ([]usecases.UseCase, error) {
	return retry.Do(ctx, c.useCases, func(ctx context.Context) ([]usecases.UseCase, error) {
		list := usecases.List{}
		if err := requestJson(
			ctx, c, http.MethodGet, c.apipath("use-cases"), nil, &list,
			MessageFor{
				Status4xx: "cannot list use cases",
				Status5xx: "server error while listing use cases",
			},
		); err != nil {
			return nil, err
		}
		if list.UseCases == nil {
			return []usecases.UseCase{}, nil
		}
		return list.UseCases, nil
	})
}

func (c *client) GetTopics(ctx context.Context, useCase string) ([]string, error) {
	topics := usecases.Topics{}
	if err := requestJson(
		ctx, c, http.MethodGet, c.apipath("use-cases", useCase, "topics"), nil, &topics,
		MessageFor{
			Status4xx: fmt.Sprintf("use case %s is not found", useCase),
			Status5xx: "server error while fetching topics",
		},
	); err != nil {
		return nil, err
	}
	if topics.Topics == nil {
		return []string{}, nil
	}
	return topics.Topics, nil
}

func (c *client) GetExamples(ctx context.Context, useCase string) ([]synthesis.Record, error) {
	examples := usecases.Examples{}
	if err := requestJson(
		ctx, c, http.MethodGet, c.apipath(useCase, "gen_examples"), nil, &examples,
		MessageFor{
			Status4xx: fmt.Sprintf("use case %s is not found", useCase),
			Status5xx: "server error while fetching examples",
		},
	); err != nil {
		return nil, err
	}
	if examples.Examples == nil {
		return []synthesis.Record{}, nil
	}
	return examples.Examples, nil
}

func (c *client) GetPrompt(ctx context.Context, useCase string) (string, error) {
	var prompt string
	if err := requestJson(
		ctx, c, http.MethodGet, c.apipath(useCase, "gen_prompt"), nil, &prompt,
		MessageFor{
			Status4xx: fmt.Sprintf("use case %s is not found", useCase),
			Status5xx: "server error while fetching prompt",
		},
	); err != nil {
		return "", err
	}
	return prompt, nil
}

func (c *client) CreateCustomPrompt(ctx context.Context, req synthesis.CustomPromptRequest) (string, error) {
	resp := struct {
		GeneratedPrompt string `json:"generated_prompt"`
	}{}
	if err := requestJson(
		ctx, c, http.MethodPost, c.apipath("create_custom_prompt"), req, &resp,
		MessageFor{
			Status4xx: "cannot create prompt",
			Status5xx: "server error while creating prompt",
		},
	); err != nil {
		return "", err
	}
	return resp.GeneratedPrompt, nil
}

func (c *client) GetSchema(ctx context.Context) (string, error) {
	schema := usecases.Schema{}
	if err := requestJson(
		ctx, c, http.MethodGet, c.apipath("sql_schema"), nil, &schema,
		MessageFor{
			Status5xx: "server error while fetching schema",
		},
	); err != nil {
		return "", err
	}
	return schema.Schema, nil
}

func (c *client) GetModels(ctx context.Context) (models.Catalog, error) {
	catalog := models.Catalog{}
	if err := requestJson(
		ctx, c, http.MethodGet, c.apipath("model", "model_ID"), nil, &catalog,
		MessageFor{
			Status5xx: "server error while listing models",
		},
	); err != nil {
		return models.Catalog{}, err
	}
	return catalog, nil
}

func (c *client) GetModelParameters(ctx context.Context) (synthesis.ModelParameters, error) {
	params := models.Parameters{}
	if err := requestJson(
		ctx, c, http.MethodGet, c.apipath("model", "parameters"), nil, &params,
		MessageFor{
			Status5xx: "server error while fetching model parameters",
		},
	); err != nil {
		return synthesis.ModelParameters{}, err
	}
	return params.Parameters, nil
}
