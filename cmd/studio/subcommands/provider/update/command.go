package update

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	srest "github.com/opst/synthstudio/cmd/studio/rest"
	"github.com/opst/synthstudio/cmd/studio/subcommands/common"
	"github.com/opst/synthstudio/cmd/studio/subcommands/provider/internal/endpointfile"
	"github.com/youta-t/flarc"
)

const (
	ARG_ID   = "ENDPOINT_ID"
	ARG_FILE = "ENDPOINT_FILE"
)

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Replace a custom model endpoint.",
		struct{}{},
		flarc.Args{
			{Name: ARG_ID, Required: true, Help: "endpoint_id of the endpoint to be replaced."},
			{Name: ARG_FILE, Required: true, Help: "yaml file describing the endpoint. See \"studio provider add --help\"."},
		},
		common.NewTask(Task),
		flarc.WithDescription(`
Replace a custom model endpoint with the yaml file.
Secrets are not kept by the backend, so the file should have them again.

When endpoint_id of the file is empty, ENDPOINT_ID is used.
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
	id := cl.Args()[ARG_ID][0]
	file := cl.Args()[ARG_FILE][0]
	ep, err := endpointfile.Read(file)
	if err != nil {
		return err
	}
	if ep.EndpointId == "" {
		ep.EndpointId = id
	} else if ep.EndpointId != id {
		return fmt.Errorf("%w: endpoint_id in %s is %s, not %s", flarc.ErrUsage, file, ep.EndpointId, id)
	}
	ep = endpointfile.Normalize(ep)
	if err := endpointfile.Validate(ep); err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}

	updated, err := client.UpdateEndpoint(ctx, id, ep)
	if err != nil {
		return err
	}
	logger.Printf("endpoint %s is updated", id)

	enc := json.NewEncoder(cl.Stdout())
	enc.SetIndent("", "    ")
	if err := enc.Encode(updated.Redacted()); err != nil {
		logger.Panicf("fail to dump the endpoint")
	}
	return nil
}
