package find

import (
	"context"
	"strconv"

	"github.com/opst/synthstudio/api-types/evaluations"
	srest "github.com/opst/synthstudio/cmd/studio/rest"
	"github.com/opst/synthstudio/cmd/studio/subcommands/internal/finder"
	"github.com/opst/synthstudio/pkg/listing"
	"github.com/youta-t/flarc"
)

const CacheKey = "evaluations"

func score(e evaluations.Detail) string {
	if e.AverageScore == nil {
		return "-"
	}
	return strconv.FormatFloat(*e.AverageScore, 'f', 2, 64)
}

func Listing() finder.Listing[evaluations.Detail] {
	return finder.Listing[evaluations.Detail]{
		CacheKey: CacheKey,
		Fetch: func(ctx context.Context, client srest.StudioClient) ([]evaluations.Detail, error) {
			return client.ListEvaluations(ctx)
		},
		Columns: []listing.Column[evaluations.Detail]{
			{Header: "NAME", Value: evaluations.Detail.Name},
			{Header: "FILE", Value: evaluations.Detail.FileName},
			{Header: "MODEL", Value: func(e evaluations.Detail) string { return e.ModelId }},
			{Header: "SCORE", Value: score},
			{Header: "CREATED", Value: evaluations.Detail.Time},
		},
	}
}

func New() (flarc.Command, error) {
	return finder.New(
		"Find evaluations of datasets.",
		`
Find evaluations of datasets.
`,
		Listing(),
	)
}
