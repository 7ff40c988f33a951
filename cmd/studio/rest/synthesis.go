package rest

import (
	"context"
	"net/http"

	"github.com/opst/synthstudio/api-types/datasets"
	"github.com/opst/synthstudio/api-types/files"
	"github.com/opst/synthstudio/api-types/synthesis"
)

func (c *client) Submit(ctx context.Context, endpoint string, req synthesis.Request) (synthesis.Result, error) {
	result := synthesis.Result{}
	if err := requestJson(
		ctx, c, http.MethodPost, c.endpoint(endpoint), req, &result,
		MessageFor{
			Status4xx: "the job is rejected",
			Status5xx: "server error while submitting the job",
		},
	); err != nil {
		return synthesis.Result{}, err
	}
	return result, nil
}

func (c *client) DatasetSize(ctx context.Context, req synthesis.DatasetSizeRequest) (int, error) {
	var size synthesis.DatasetSize
	if err := requestJson(
		ctx, c, http.MethodPost, c.apipath("json", "dataset_size"), req, &size,
		MessageFor{
			Status4xx: "cannot count rows of input files",
			Status5xx: "server error while counting rows",
		},
	); err != nil {
		return 0, err
	}
	return int(size), nil
}

func (c *client) GetContent(ctx context.Context, path string) ([]synthesis.Record, error) {
	content := datasets.Content{}
	if err := requestJson(
		ctx, c, http.MethodPost, c.apipath("json", "get_content"), synthesis.ContentRequest{Path: path}, &content,
		MessageFor{
			Status4xx: "cannot read " + path,
			Status5xx: "server error while reading " + path,
		},
	); err != nil {
		return nil, err
	}
	if content.Rows == nil {
		return []synthesis.Record{}, nil
	}
	return content.Rows, nil
}

func (c *client) ListProjectFiles(ctx context.Context, path string) ([]files.File, error) {
	list := files.List{}
	if err := requestJson(
		ctx, c, http.MethodPost, c.apipath("get_project_files"), files.ListRequest{Path: path}, &list,
		MessageFor{
			Status4xx: "cannot list files in " + path,
			Status5xx: "server error while listing files",
		},
	); err != nil {
		return nil, err
	}
	if list.Files == nil {
		return []files.File{}, nil
	}
	return list.Files, nil
}

func (c *client) Evaluate(ctx context.Context, req synthesis.EvaluationRequest) (synthesis.Result, error) {
	result := synthesis.Result{}
	if err := requestJson(
		ctx, c, http.MethodPost, c.apipath("synthesis", "evaluate"), req, &result,
		MessageFor{
			Status4xx: "the evaluation is rejected",
			Status5xx: "server error while submitting the evaluation",
		},
	); err != nil {
		return synthesis.Result{}, err
	}
	return result, nil
}
