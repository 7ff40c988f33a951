package welcome_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/opst/synthstudio/cmd/studio/config/state"
	"github.com/opst/synthstudio/cmd/studio/subcommands/common"
	"github.com/opst/synthstudio/cmd/studio/subcommands/internal/commandline"
	"github.com/opst/synthstudio/cmd/studio/subcommands/logger"
	"github.com/opst/synthstudio/cmd/studio/subcommands/welcome"
	"github.com/opst/synthstudio/pkg/utils/try"
	"github.com/youta-t/flarc"
)

func TestWelcome(t *testing.T) {
	dir := t.TempDir()
	cf := common.CommonFlags{ProfileStore: filepath.Join(dir, "profile")}
	stateFile := common.StateFile(cf.ProfileStore)

	run := func(flags welcome.Flags) (string, error) {
		stdout := new(strings.Builder)
		err := welcome.Task(
			context.Background(), logger.Null(), cf,
			commandline.MockCommandline[welcome.Flags]{Stdout_: stdout, Flags_: flags},
			nil,
		)
		return stdout.String(), err
	}

	t.Run("it shows the message", func(t *testing.T) {
		out := try.To(run(welcome.Flags{})).OrFatal(t)
		if out != welcome.Message {
			t.Errorf("unexpected output: %s", out)
		}
		shown := new(strings.Builder)
		if err := welcome.Show(shown, stateFile); err != nil {
			t.Fatal(err)
		}
		if shown.String() != welcome.Message {
			t.Errorf("Show should write the message before muted")
		}
	})

	t.Run("--mute is persisted", func(t *testing.T) {
		out := try.To(run(welcome.Flags{Mute: true})).OrFatal(t)
		if out != "" {
			t.Errorf("unexpected output: %s", out)
		}
		s := try.To(state.Load(stateFile)).OrFatal(t)
		if !s.WelcomeMuted {
			t.Errorf("it should be muted")
		}

		shown := new(strings.Builder)
		if err := welcome.Show(shown, stateFile); err != nil {
			t.Fatal(err)
		}
		if shown.Len() != 0 {
			t.Errorf("Show should write nothing when muted")
		}
	})

	t.Run("--unmute is persisted", func(t *testing.T) {
		try.To(run(welcome.Flags{Unmute: true})).OrFatal(t)
		s := try.To(state.Load(stateFile)).OrFatal(t)
		if s.WelcomeMuted {
			t.Errorf("it should be unmuted")
		}
	})

	t.Run("--mute with --unmute is usage error", func(t *testing.T) {
		_, err := run(welcome.Flags{Mute: true, Unmute: true})
		if !errors.Is(err, flarc.ErrUsage) {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
