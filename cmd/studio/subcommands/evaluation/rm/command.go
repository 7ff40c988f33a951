package rm

import (
	"context"
	"log"

	srest "github.com/opst/synthstudio/cmd/studio/rest"
	"github.com/opst/synthstudio/cmd/studio/subcommands/common"
	evaluation_find "github.com/opst/synthstudio/cmd/studio/subcommands/evaluation/find"
	"github.com/youta-t/flarc"
)

const ARG_FILE = "FILE"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Delete an evaluation.",
		struct{}{},
		flarc.Args{
			{Name: ARG_FILE, Required: true, Help: "evaluate_file_name of the evaluation to be deleted."},
		},
		common.NewTask(Task),
	)
}

func Task(
	ctx context.Context,
	logger *log.Logger,
	session common.Session,
	client srest.StudioClient,
	cl flarc.Commandline[struct{}],
	_ []any,
) error {
	file := cl.Args()[ARG_FILE][0]
	if err := client.DeleteEvaluation(ctx, file); err != nil {
		return err
	}
	logger.Printf("deleted evaluation %s", file)

	if err := session.InvalidateListings(ctx, evaluation_find.CacheKey); err != nil {
		logger.Printf("failed to refresh cached evaluations: %s", err)
	}
	return nil
}
