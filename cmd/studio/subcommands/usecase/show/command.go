package show

import (
	"context"
	"encoding/json"
	"log"

	"github.com/opst/synthstudio/api-types/synthesis"
	"github.com/opst/synthstudio/api-types/usecases"
	srest "github.com/opst/synthstudio/cmd/studio/rest"
	"github.com/opst/synthstudio/cmd/studio/subcommands/common"
	"github.com/youta-t/flarc"
)

const ARG_USECASE = "USECASE"

// Defaults are what the backend suggests for the use case.
type Defaults struct {
	UseCase  string             `json:"use_case"`
	Topics   []string           `json:"topics"`
	Examples []synthesis.Record `json:"examples"`
	Prompt   string             `json:"prompt"`
	Schema   string             `json:"schema,omitempty"`
}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Show defaults of a use case.",
		struct{}{},
		flarc.Args{
			{Name: ARG_USECASE, Required: true, Help: `id of the use case, like "code_generation".`},
		},
		common.NewTask(Task),
		flarc.WithDescription(`
Show default topics, examples and prompt of the use case.
For SQL use cases, the default schema is shown too.

They are used by "studio generate submit" when the configuration leaves them empty.
`),
	)
}

// Fetch collects defaults of the use case.
func Fetch(ctx context.Context, client srest.StudioClient, useCase string) (Defaults, error) {
	d := Defaults{UseCase: useCase}
	var err error
	if d.Topics, err = client.GetTopics(ctx, useCase); err != nil {
		return Defaults{}, err
	}
	if d.Examples, err = client.GetExamples(ctx, useCase); err != nil {
		return Defaults{}, err
	}
	if d.Prompt, err = client.GetPrompt(ctx, useCase); err != nil {
		return Defaults{}, err
	}
	if usecases.IsSQL(useCase) {
		if d.Schema, err = client.GetSchema(ctx); err != nil {
			return Defaults{}, err
		}
	}
	return d, nil
}

func Task(
	ctx context.Context,
	logger *log.Logger,
	_ common.Session,
	client srest.StudioClient,
	cl flarc.Commandline[struct{}],
	_ []any,
) error {
	d, err := Fetch(ctx, client, cl.Args()[ARG_USECASE][0])
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cl.Stdout())
	enc.SetIndent("", "    ")
	if err := enc.Encode(d); err != nil {
		logger.Panicf("fail to dump the use case")
	}
	return nil
}
