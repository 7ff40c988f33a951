package validate

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/opst/synthstudio/cmd/studio/env"
	"github.com/opst/synthstudio/cmd/studio/subcommands/common"
	"github.com/opst/synthstudio/cmd/studio/subcommands/generate/internal/jobconfig"
	"github.com/opst/synthstudio/pkg/utils/filewatch"
	"github.com/opst/synthstudio/pkg/wizard"
	"github.com/youta-t/flarc"
)

type Flags struct {
	Watch bool `flag:"watch" alias:"w" help:"validate again whenever CONFIG is modified, until interrupted."`
}

const ARG_CONFIG = "CONFIG"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Validate a job configuration.",
		Flags{},
		flarc.Args{
			{Name: ARG_CONFIG, Required: true, Help: "yaml file of the job configuration."},
		},
		common.NewTaskWithCommonFlag(Task),
		flarc.WithDescription(`
Check the job configuration, without the backend.

Examples and the prompt are not checked when they will be filled with defaults of the use case.
Doc paths of unexpected file types and model parameters out of range are shown as warnings.
`),
	)
}

// Check validates the job configuration file with the studioenv.
//
// Warnings are values which the backend may reject. They do not make Check fail.
func Check(configFile string, studioenv env.GenerateDefaults) (warnings []wizard.FieldError, err error) {
	c, err := jobconfig.Load(configFile, wizard.NewJobConfiguration())
	if err != nil {
		return nil, err
	}
	c = jobconfig.WithDefaults(c, studioenv)
	return wizard.Lint(c), jobconfig.Validate(c)
}

func Task(
	ctx context.Context,
	logger *log.Logger,
	cf common.CommonFlags,
	cl flarc.Commandline[Flags],
	_ []any,
) error {
	configFile := cl.Args()[ARG_CONFIG][0]
	studioenv, err := env.LoadStudioEnv(cf.Env)
	if err != nil {
		return err
	}

	report := func() error {
		warnings, err := Check(configFile, studioenv.Generate)
		if err == nil {
			fmt.Fprintf(cl.Stdout(), "%s: ok\n", configFile)
		} else {
			fmt.Fprintf(cl.Stdout(), "%s: NG\n", configFile)
			for _, e := range unjoin(err) {
				fmt.Fprintf(cl.Stdout(), "    %s\n", e)
			}
		}
		for _, w := range warnings {
			fmt.Fprintf(cl.Stdout(), "    warning: %s\n", w)
		}
		return err
	}

	if !cl.Flags().Watch {
		return report()
	}

	for {
		wctx, cancel, err := filewatch.UntilModifyContext(ctx, configFile)
		if err != nil {
			return err
		}
		if err := report(); err != nil {
			logger.Printf("waiting for %s to be modified", configFile)
		}
		<-wctx.Done()
		cancel()
		if err := ctx.Err(); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
	}
}

func unjoin(err error) []error {
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		return j.Unwrap()
	}
	return []error{err}
}
