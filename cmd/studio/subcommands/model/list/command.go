package list

import (
	"context"
	"encoding/json"
	"log"

	"github.com/opst/synthstudio/api-types/synthesis"
	srest "github.com/opst/synthstudio/cmd/studio/rest"
	"github.com/opst/synthstudio/cmd/studio/subcommands/common"
	"github.com/youta-t/flarc"
)

type Flags struct {
	Provider string `flag:"provider" alias:"p" metavar:"INFERENCE_TYPE" help:"show models only for the provider, like \"aws_bedrock\"."`
}

// Listed is the output of the command.
type Listed struct {
	Models     map[string][]string       `json:"models"`
	Parameters synthesis.ModelParameters `json:"parameters"`
}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"List models and default model parameters.",
		Flags{},
		flarc.Args{},
		common.NewTask(Task),
	)
}

func Task(
	ctx context.Context,
	logger *log.Logger,
	_ common.Session,
	client srest.StudioClient,
	cl flarc.Commandline[Flags],
	_ []any,
) error {
	catalog, err := client.GetModels(ctx)
	if err != nil {
		return err
	}
	params, err := client.GetModelParameters(ctx)
	if err != nil {
		return err
	}

	listed := Listed{Models: map[string][]string{}, Parameters: params}
	if p := cl.Flags().Provider; p != "" {
		listed.Models[p] = catalog.Of(p)
	} else {
		for p := range catalog.Models {
			listed.Models[p] = catalog.Of(p)
		}
	}

	enc := json.NewEncoder(cl.Stdout())
	enc.SetIndent("", "    ")
	if err := enc.Encode(listed); err != nil {
		logger.Panicf("fail to dump models")
	}
	return nil
}
