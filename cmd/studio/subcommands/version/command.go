package version

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	srest "github.com/opst/synthstudio/cmd/studio/rest"
	"github.com/opst/synthstudio/cmd/studio/subcommands/common"
	"github.com/opst/synthstudio/pkg/buildtime"
	"github.com/youta-t/flarc"
)

type Flags struct {
	CheckUpgrade bool `flag:"check-upgrade" help:"ask the backend whether a new version of the studio is available."`
}

type Option struct {
	connect func(common.CommonFlags) (srest.StudioClient, error)
}

// WithConnector replaces the way to get a client for --check-upgrade.
func WithConnector(connect func(common.CommonFlags) (srest.StudioClient, error)) func(*Option) *Option {
	return func(o *Option) *Option {
		o.connect = connect
		return o
	}
}

func connect(cf common.CommonFlags) (srest.StudioClient, error) {
	_, client, err := common.Connect(cf)
	return client, err
}

func New(options ...func(*Option) *Option) (flarc.Command, error) {
	option := &Option{connect: connect}
	for _, o := range options {
		option = o(option)
	}

	return flarc.NewCommand(
		"Show version of this command.",
		Flags{},
		flarc.Args{},
		common.NewTaskWithCommonFlag(Task(option.connect)),
		flarc.WithDescription(`
Show version of this command.

With --check-upgrade, it also asks the backend of the current profile
whether an upgrade of the studio is available.
`),
	)
}

func Task(
	connect func(common.CommonFlags) (srest.StudioClient, error),
) common.StudioTaskWithCommonFlag[Flags] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		cf common.CommonFlags,
		cl flarc.Commandline[Flags],
		_ []any,
	) error {
		fmt.Fprintln(cl.Stdout(), buildtime.VersionString())
		if !cl.Flags().CheckUpgrade {
			return nil
		}

		client, err := connect(cf)
		if err != nil {
			return err
		}
		status, err := client.CheckUpgrade(ctx)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cl.Stdout())
		enc.SetIndent("", "    ")
		if err := enc.Encode(status); err != nil {
			logger.Panicf("fail to dump upgrade status")
		}
		return nil
	}
}
