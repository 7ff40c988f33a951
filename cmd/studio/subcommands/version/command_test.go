package version_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	srest "github.com/opst/synthstudio/cmd/studio/rest"
	"github.com/opst/synthstudio/cmd/studio/rest/mock"
	"github.com/opst/synthstudio/cmd/studio/subcommands/common"
	"github.com/opst/synthstudio/cmd/studio/subcommands/internal/commandline"
	"github.com/opst/synthstudio/cmd/studio/subcommands/logger"
	"github.com/opst/synthstudio/cmd/studio/subcommands/version"
	"github.com/opst/synthstudio/pkg/buildtime"
)

func TestVersion(t *testing.T) {
	t.Run("it shows the version without connecting", func(t *testing.T) {
		stdout := new(strings.Builder)
		testee := version.Task(func(common.CommonFlags) (srest.StudioClient, error) {
			t.Error("it should not connect")
			return nil, errors.New("unexpected")
		})
		err := testee(
			context.Background(), logger.Null(), common.CommonFlags{},
			commandline.MockCommandline[version.Flags]{Stdout_: stdout},
			nil,
		)
		if err != nil {
			t.Fatal(err)
		}
		if stdout.String() != buildtime.VersionString()+"\n" {
			t.Errorf("unexpected output: %q", stdout.String())
		}
	})

	t.Run("with --check-upgrade, it asks the backend", func(t *testing.T) {
		client := mock.New(t)
		client.Impl.CheckUpgrade = func(context.Context) (map[string]any, error) {
			return map[string]any{"updates_available": true}, nil
		}
		stdout := new(strings.Builder)
		testee := version.Task(func(common.CommonFlags) (srest.StudioClient, error) {
			return client, nil
		})
		err := testee(
			context.Background(), logger.Null(), common.CommonFlags{},
			commandline.MockCommandline[version.Flags]{
				Stdout_: stdout,
				Flags_:  version.Flags{CheckUpgrade: true},
			},
			nil,
		)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(stdout.String(), `"updates_available": true`) {
			t.Errorf("unexpected output: %s", stdout.String())
		}
		if client.Calls.CheckUpgrade != 1 {
			t.Errorf("CheckUpgrade is called %d times", client.Calls.CheckUpgrade)
		}
	})
}
