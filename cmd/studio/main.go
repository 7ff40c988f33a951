package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path"

	"github.com/opst/synthstudio/cmd/studio/subcommands/common"
	subcred "github.com/opst/synthstudio/cmd/studio/subcommands/credential"
	subds "github.com/opst/synthstudio/cmd/studio/subcommands/dataset"
	subeval "github.com/opst/synthstudio/cmd/studio/subcommands/evaluation"
	subexp "github.com/opst/synthstudio/cmd/studio/subcommands/export"
	subfile "github.com/opst/synthstudio/cmd/studio/subcommands/file"
	subgen "github.com/opst/synthstudio/cmd/studio/subcommands/generate"
	subinit "github.com/opst/synthstudio/cmd/studio/subcommands/init"
	"github.com/opst/synthstudio/cmd/studio/subcommands/logger"
	submodel "github.com/opst/synthstudio/cmd/studio/subcommands/model"
	subprov "github.com/opst/synthstudio/cmd/studio/subcommands/provider"
	subuc "github.com/opst/synthstudio/cmd/studio/subcommands/usecase"
	subver "github.com/opst/synthstudio/cmd/studio/subcommands/version"
	subwel "github.com/opst/synthstudio/cmd/studio/subcommands/welcome"
	"github.com/opst/synthstudio/pkg/utils/try"
	"github.com/youta-t/flarc"
)

// Studio builds the command tree of studio. cf is the defaults of common flags.
func Studio(cf common.CommonFlags) (flarc.Command, error) {
	init, err := subinit.New()
	if err != nil {
		return nil, err
	}
	generate, err := subgen.New()
	if err != nil {
		return nil, err
	}
	usecase, err := subuc.New()
	if err != nil {
		return nil, err
	}
	dataset, err := subds.New()
	if err != nil {
		return nil, err
	}
	evaluation, err := subeval.New()
	if err != nil {
		return nil, err
	}
	export, err := subexp.New()
	if err != nil {
		return nil, err
	}
	provider, err := subprov.New()
	if err != nil {
		return nil, err
	}
	credential, err := subcred.New()
	if err != nil {
		return nil, err
	}
	model, err := submodel.New()
	if err != nil {
		return nil, err
	}
	file, err := subfile.New()
	if err != nil {
		return nil, err
	}
	welcome, err := subwel.New()
	if err != nil {
		return nil, err
	}
	version, err := subver.New()
	if err != nil {
		return nil, err
	}

	return flarc.NewCommandGroup(
		"Synthetic dataset studio commandline interface",
		cf,
		flarc.WithSubcommand("init", init),
		flarc.WithSubcommand("generate", generate),
		flarc.WithSubcommand("usecase", usecase),
		flarc.WithSubcommand("dataset", dataset),
		flarc.WithSubcommand("evaluation", evaluation),
		flarc.WithSubcommand("export", export),
		flarc.WithSubcommand("provider", provider),
		flarc.WithSubcommand("credential", credential),
		flarc.WithSubcommand("model", model),
		flarc.WithSubcommand("file", file),
		flarc.WithSubcommand("welcome", welcome),
		flarc.WithSubcommand("version", version),
	)
}

func main() {
	name := path.Base(os.Args[0])
	logger := logger.Default()
	logger.SetPrefix(fmt.Sprintf("[%s] ", name))

	ctx, cancel := signal.NotifyContext(
		context.Background(), os.Interrupt, os.Kill,
	)
	defer cancel()

	cf := try.To(common.Flags(".")).OrFatal(logger)
	studio := try.To(Studio(cf)).OrFatal(logger)

	os.Exit(flarc.Run(ctx, studio, flarc.WithHelp(true)))
}
