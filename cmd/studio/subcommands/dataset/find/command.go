package find

import (
	"context"
	"strconv"

	"github.com/opst/synthstudio/api-types/datasets"
	srest "github.com/opst/synthstudio/cmd/studio/rest"
	"github.com/opst/synthstudio/cmd/studio/subcommands/internal/finder"
	"github.com/opst/synthstudio/pkg/listing"
	"github.com/youta-t/flarc"
)

// CacheKey is the key of the dataset listing in the cache store.
const CacheKey = "datasets"

func Listing() finder.Listing[datasets.Detail] {
	return finder.Listing[datasets.Detail]{
		CacheKey: CacheKey,
		Fetch: func(ctx context.Context, client srest.StudioClient) ([]datasets.Detail, error) {
			return client.ListDatasets(ctx)
		},
		Columns: []listing.Column[datasets.Detail]{
			{Header: "NAME", Value: datasets.Detail.Name},
			{Header: "FILE", Value: datasets.Detail.FileName},
			{Header: "MODEL", Value: func(d datasets.Detail) string { return d.ModelId }},
			{Header: "USE CASE", Value: func(d datasets.Detail) string { return d.UseCase }},
			{Header: "ROWS", Value: func(d datasets.Detail) string {
				done, total := d.Progress()
				return strconv.Itoa(done) + "/" + strconv.Itoa(total)
			}},
			{Header: "CREATED", Value: datasets.Detail.Time},
		},
		Overrides: listing.DatasetOverrides,
	}
}

func New() (flarc.Command, error) {
	return finder.New(
		"Find generated datasets.",
		`
Find datasets generated by the studio.
`,
		Listing(),
	)
}
