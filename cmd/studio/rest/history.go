package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/opst/synthstudio/api-types/datasets"
	"github.com/opst/synthstudio/api-types/evaluations"
	"github.com/opst/synthstudio/api-types/exports"
)

func (c *client) ListDatasets(ctx context.Context) ([]datasets.Detail, error) {
	ds := make([]datasets.Detail, 0, 16)
	if err := requestJson(
		ctx, c, http.MethodGet, c.apipath("generations", "history"), nil, &ds,
		MessageFor{
			Status5xx: "server error while listing datasets",
		},
	); err != nil {
		return nil, err
	}
	return ds, nil
}

func (c *client) GetDataset(ctx context.Context, fileName string) (datasets.Detail, error) {
	d := datasets.Detail{}
	if err := requestJson(
		ctx, c, http.MethodGet, c.apipath("generations", fileName), nil, &d,
		MessageFor{
			Status4xx: fmt.Sprintf("dataset %s is not found", fileName),
			Status5xx: "server error while fetching the dataset",
		},
	); err != nil {
		return datasets.Detail{}, err
	}
	return d, nil
}

func (c *client) GetDatasetContent(ctx context.Context, fileName string) (datasets.Content, error) {
	content := datasets.Content{}
	if err := requestJson(
		ctx, c, http.MethodGet, c.apipath("dataset_details", fileName), nil, &content,
		MessageFor{
			Status4xx: fmt.Sprintf("dataset %s is not found", fileName),
			Status5xx: "server error while reading the dataset",
		},
	); err != nil {
		return datasets.Content{}, err
	}
	if content.GenerateFileName == "" {
		content.GenerateFileName = fileName
	}
	return content, nil
}

func (c *client) delete(ctx context.Context, url string, messageFor MessageFor) error {
	resp, err := c.request(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return unmarshalResponseDiscardingPayload(resp, messageFor)
}

func (c *client) DeleteDataset(ctx context.Context, fileName string) error {
	return c.delete(
		ctx, c.apipath("generations", fileName),
		MessageFor{
			Status4xx: fmt.Sprintf("dataset %s is not found", fileName),
			Status5xx: "server error while deleting the dataset",
		},
	)
}

func (c *client) ListEvaluations(ctx context.Context) ([]evaluations.Detail, error) {
	evs := make([]evaluations.Detail, 0, 16)
	if err := requestJson(
		ctx, c, http.MethodGet, c.apipath("evaluations", "history"), nil, &evs,
		MessageFor{
			Status5xx: "server error while listing evaluations",
		},
	); err != nil {
		return nil, err
	}
	return evs, nil
}

func (c *client) DeleteEvaluation(ctx context.Context, fileName string) error {
	return c.delete(
		ctx, c.apipath("evaluations", fileName),
		MessageFor{
			Status4xx: fmt.Sprintf("evaluation %s is not found", fileName),
			Status5xx: "server error while deleting the evaluation",
		},
	)
}

func (c *client) ListExports(ctx context.Context) ([]exports.Detail, error) {
	exs := make([]exports.Detail, 0, 16)
	if err := requestJson(
		ctx, c, http.MethodGet, c.apipath("exports", "history"), nil, &exs,
		MessageFor{
			Status5xx: "server error while listing exports",
		},
	); err != nil {
		return nil, err
	}
	return exs, nil
}

func (c *client) Export(ctx context.Context, req exports.Request) (map[string]any, error) {
	resp := map[string]any{}
	if err := requestJson(
		ctx, c, http.MethodPost, c.apipath("export_results"), req, &resp,
		MessageFor{
			Status4xx: "the export is rejected",
			Status5xx: "server error while exporting",
		},
	); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *client) CheckUpgrade(ctx context.Context) (map[string]any, error) {
	resp := map[string]any{}
	if err := requestJson(
		ctx, c, http.MethodGet, c.apipath("synthesis-studio", "check-upgrade"), nil, &resp,
		MessageFor{
			Status5xx: "server error while checking upgrade",
		},
	); err != nil {
		return nil, err
	}
	return resp, nil
}
