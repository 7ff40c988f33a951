package template

import (
	"context"
	"fmt"
	"log"

	"github.com/opst/synthstudio/cmd/studio/env"
	"github.com/opst/synthstudio/cmd/studio/subcommands/common"
	"github.com/opst/synthstudio/cmd/studio/subcommands/generate/internal/jobconfig"
	"github.com/opst/synthstudio/pkg/wizard"
	"github.com/youta-t/flarc"
)

type Flags struct {
	Workflow string `flag:"workflow" alias:"w" metavar:"supervised-fine-tuning|custom|freeform" help:"workflow of the job."`
}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Print a template of job configurations.",
		Flags{Workflow: string(wizard.WorkflowSFT)},
		flarc.Args{},
		common.NewTaskWithCommonFlag(Task),
		flarc.WithDescription(`
Print a job configuration file for "studio generate submit", filled with defaults.
Values in the studioenv file are used as defaults too.
`),
	)
}

func Task(
	_ context.Context,
	_ *log.Logger,
	cf common.CommonFlags,
	cl flarc.Commandline[Flags],
	_ []any,
) error {
	w, err := wizard.ParseWorkflow(cl.Flags().Workflow)
	if err != nil {
		return fmt.Errorf("%w: %w", flarc.ErrUsage, err)
	}
	studioenv, err := env.LoadStudioEnv(cf.Env)
	if err != nil {
		return err
	}
	buf, err := jobconfig.Template(w, studioenv.Generate)
	if err != nil {
		return err
	}
	_, err = cl.Stdout().Write(buf)
	return err
}
