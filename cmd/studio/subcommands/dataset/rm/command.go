package rm

import (
	"context"
	"log"

	srest "github.com/opst/synthstudio/cmd/studio/rest"
	"github.com/opst/synthstudio/cmd/studio/subcommands/common"
	dataset_find "github.com/opst/synthstudio/cmd/studio/subcommands/dataset/find"
	"github.com/youta-t/flarc"
)

const ARG_FILE = "FILE"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Delete a dataset.",
		struct{}{},
		flarc.Args{
			{Name: ARG_FILE, Required: true, Help: "generate_file_name of the dataset to be deleted."},
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
	if err := client.DeleteDataset(ctx, file); err != nil {
		return err
	}
	logger.Printf("deleted dataset %s", file)

	if err := session.InvalidateListings(ctx, dataset_find.CacheKey); err != nil {
		logger.Printf("failed to refresh cached datasets: %s", err)
	}
	return nil
}
