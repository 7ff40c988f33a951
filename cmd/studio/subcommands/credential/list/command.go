package list

import (
	"context"
	"encoding/json"
	"log"

	"github.com/opst/synthstudio/api-types/providers"
	srest "github.com/opst/synthstudio/cmd/studio/rest"
	"github.com/opst/synthstudio/cmd/studio/subcommands/common"
	"github.com/youta-t/flarc"
)

// Listed is the output of the command.
type Listed struct {
	Providers []providers.Credential       `json:"providers"`
	Keys      []providers.CredentialStatus `json:"keys"`
}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Show which credentials are set.",
		struct{}{},
		flarc.Args{},
		common.NewTask(Task),
		flarc.WithDescription(`
Show which credential keys are set in the backend, and which providers are ready.
A provider is ready when all of its keys are set.

Values of credentials are never shown.
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
	statuses, err := client.ListCredentials(ctx)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cl.Stdout())
	enc.SetIndent("", "    ")
	listed := Listed{Providers: providers.CredentialsOf(statuses), Keys: statuses}
	if err := enc.Encode(listed); err != nil {
		logger.Panicf("fail to dump credentials")
	}
	return nil
}
