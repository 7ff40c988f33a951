package welcome

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/opst/synthstudio/cmd/studio/config/state"
	"github.com/opst/synthstudio/cmd/studio/subcommands/common"
	"github.com/youta-t/flarc"
)

type Flags struct {
	Mute   bool `flag:"mute" help:"do not show the welcome message after \"studio init\" anymore."`
	Unmute bool `flag:"unmute" help:"show the welcome message after \"studio init\" again."`
}

const Message = `Welcome to Synthetic Data Studio!

Generate and validate datasets for testing LLM systems, at a fraction of the time and cost.

  1. Topics or instructions tell what to generate,
     like "generate one python programming question".
  2. A model generates rows for each topic, following your prompt and examples.
  3. Optionally, another model scores each generated row.

Get started:

  studio usecase list                  # see use cases and their defaults
  studio generate template > job.yaml  # write a job configuration
  studio generate submit job.yaml      # generate a dataset
  studio dataset find --table          # see your datasets
`

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Show the welcome message.",
		Flags{},
		flarc.Args{},
		common.NewTaskWithCommonFlag(Task),
	)
}

// Show writes the welcome message unless it is muted.
func Show(w io.Writer, stateFile string) error {
	s, err := state.Load(stateFile)
	if err != nil {
		return err
	}
	if s.WelcomeMuted {
		return nil
	}
	_, err = io.WriteString(w, Message)
	return err
}

func Task(
	_ context.Context,
	logger *log.Logger,
	cf common.CommonFlags,
	cl flarc.Commandline[Flags],
	_ []any,
) error {
	flags := cl.Flags()
	if flags.Mute && flags.Unmute {
		return fmt.Errorf("%w: --mute and --unmute are exclusive", flarc.ErrUsage)
	}

	stateFile := common.StateFile(cf.ProfileStore)
	if !flags.Mute && !flags.Unmute {
		_, err := io.WriteString(cl.Stdout(), Message)
		return err
	}

	s, err := state.Load(stateFile)
	if err != nil {
		return err
	}
	s.WelcomeMuted = flags.Mute
	if err := s.Save(stateFile); err != nil {
		return fmt.Errorf("failed to save %s: %w", stateFile, err)
	}
	if s.WelcomeMuted {
		logger.Printf("the welcome message is muted")
	} else {
		logger.Printf("the welcome message is unmuted")
	}
	return nil
}
