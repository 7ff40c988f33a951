package show

import (
	"context"
	"encoding/json"
	"log"

	srest "github.com/opst/synthstudio/cmd/studio/rest"
	"github.com/opst/synthstudio/cmd/studio/subcommands/common"
	"github.com/youta-t/flarc"
)

const ARG_ID = "ENDPOINT_ID"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Show a custom model endpoint.",
		struct{}{},
		flarc.Args{
			{Name: ARG_ID, Required: true, Help: "endpoint_id of the endpoint."},
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
	ep, err := client.GetEndpoint(ctx, cl.Args()[ARG_ID][0])
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cl.Stdout())
	enc.SetIndent("", "    ")
	if err := enc.Encode(ep.Redacted()); err != nil {
		logger.Panicf("fail to dump the endpoint")
	}
	return nil
}
