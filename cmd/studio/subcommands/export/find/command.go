package find

import (
	"context"

	"github.com/opst/synthstudio/api-types/exports"
	srest "github.com/opst/synthstudio/cmd/studio/rest"
	"github.com/opst/synthstudio/cmd/studio/subcommands/internal/finder"
	"github.com/opst/synthstudio/pkg/listing"
	"github.com/youta-t/flarc"
)

const CacheKey = "exports"

func Listing() finder.Listing[exports.Detail] {
	return finder.Listing[exports.Detail]{
		CacheKey: CacheKey,
		Fetch: func(ctx context.Context, client srest.StudioClient) ([]exports.Detail, error) {
			return client.ListExports(ctx)
		},
		Columns: []listing.Column[exports.Detail]{
			{Header: "DATASET", Value: exports.Detail.Name},
			{Header: "EXPORT", Value: func(d exports.Detail) string { return d.DisplayExportName }},
			{Header: "HUGGING FACE", Value: func(d exports.Detail) string { return d.HFExportPath }},
			{Header: "CREATED", Value: exports.Detail.Time},
		},
	}
}

func New() (flarc.Command, error) {
	return finder.New(
		"Find exports of datasets.",
		`
Find exports of datasets to Hugging Face or S3.
`,
		Listing(),
	)
}
