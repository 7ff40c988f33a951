package rm

import (
	"context"
	"log"

	srest "github.com/opst/synthstudio/cmd/studio/rest"
	"github.com/opst/synthstudio/cmd/studio/subcommands/common"
	"github.com/youta-t/flarc"
)

const ARG_ID = "ENDPOINT_ID"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Delete a custom model endpoint.",
		struct{}{},
		flarc.Args{
			{Name: ARG_ID, Required: true, Help: "endpoint_id of the endpoint to be deleted."},
		},
		common.NewTask(Task),
	)
}

func Task(
	ctx context.Context,
	logger *log.Logger,
	_ common.Session,
	client srest.StudioClient,
	cl flarc.Commandline[struct{}],
	_ []any,
) error {
	id := cl.Args()[ARG_ID][0]
	if err := client.DeleteEndpoint(ctx, id); err != nil {
		return err
	}
	logger.Printf("endpoint %s is deleted", id)
	return nil
}
