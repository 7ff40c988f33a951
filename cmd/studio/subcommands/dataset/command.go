package dataset

import (
	dataset_export "github.com/opst/synthstudio/cmd/studio/subcommands/dataset/export"
	dataset_find "github.com/opst/synthstudio/cmd/studio/subcommands/dataset/find"
	dataset_rm "github.com/opst/synthstudio/cmd/studio/subcommands/dataset/rm"
	dataset_show "github.com/opst/synthstudio/cmd/studio/subcommands/dataset/show"
	dataset_watch "github.com/opst/synthstudio/cmd/studio/subcommands/dataset/watch"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	find, err := dataset_find.New()
	if err != nil {
		return nil, err
	}
	show, err := dataset_show.New()
	if err != nil {
		return nil, err
	}
	rm, err := dataset_rm.New()
	if err != nil {
		return nil, err
	}
	export, err := dataset_export.New()
	if err != nil {
		return nil, err
	}
	watch, err := dataset_watch.New()
	if err != nil {
		return nil, err
	}

	return flarc.NewCommandGroup(
		"Manipulate generated datasets.",
		struct{}{},
		flarc.WithSubcommand("find", find),
		flarc.WithSubcommand("show", show),
		flarc.WithSubcommand("rm", rm),
		flarc.WithSubcommand("export", export),
		flarc.WithSubcommand("watch", watch),
	)
}
