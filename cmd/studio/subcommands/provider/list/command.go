package list

import (
	"context"
	"encoding/json"
	"log"

	"github.com/opst/synthstudio/api-types/providers"
	srest "github.com/opst/synthstudio/cmd/studio/rest"
	"github.com/opst/synthstudio/cmd/studio/subcommands/common"
	"github.com/opst/synthstudio/pkg/utils"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"List custom model endpoints.",
		struct{}{},
		flarc.Args{},
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
	eps, err := client.ListEndpoints(ctx)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cl.Stdout())
	enc.SetIndent("", "    ")
	if err := enc.Encode(utils.Map(eps, providers.Endpoint.Redacted)); err != nil {
		logger.Panicf("fail to dump endpoints")
	}
	return nil
}
