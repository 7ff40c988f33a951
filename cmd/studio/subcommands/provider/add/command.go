package add

import (
	"context"
	"encoding/json"
	"log"

	srest "github.com/opst/synthstudio/cmd/studio/rest"
	"github.com/opst/synthstudio/cmd/studio/subcommands/common"
	"github.com/opst/synthstudio/cmd/studio/subcommands/provider/internal/endpointfile"
	"github.com/youta-t/flarc"
)

const ARG_FILE = "ENDPOINT_FILE"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Register a custom model endpoint.",
		struct{}{},
		flarc.Args{
			{Name: ARG_FILE, Required: true, Help: "yaml file describing the endpoint."},
		},
		common.NewTask(Task),
		flarc.WithDescription(`
Register a custom model endpoint from a yaml file like:

    endpoint_id: my-endpoint
    display_name: My Endpoint
    model_id: meta/llama-3.1-8b-instruct
    provider_type: openai_compatible  # caii, bedrock, openai, openai_compatible or gemini
    endpoint_url: https://example.com/v1
    api_key: ...

caii needs endpoint_url and cdp_token.
bedrock needs endpoint_url, aws_access_key_id and aws_secret_access_key (aws_region defaults to us-west-2).
openai and gemini need api_key.
`),
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
	ep, err := endpointfile.Load(cl.Args()[ARG_FILE][0])
	if err != nil {
		return err
	}
	added, err := client.AddEndpoint(ctx, ep)
	if err != nil {
		return err
	}
	logger.Printf("endpoint %s is added", added.EndpointId)

	enc := json.NewEncoder(cl.Stdout())
	enc.SetIndent("", "    ")
	if err := enc.Encode(added.Redacted()); err != nil {
		logger.Panicf("fail to dump the endpoint")
	}
	return nil
}
