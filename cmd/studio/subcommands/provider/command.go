package provider

import (
	provider_add "github.com/opst/synthstudio/cmd/studio/subcommands/provider/add"
	provider_list "github.com/opst/synthstudio/cmd/studio/subcommands/provider/list"
	provider_rm "github.com/opst/synthstudio/cmd/studio/subcommands/provider/rm"
	provider_show "github.com/opst/synthstudio/cmd/studio/subcommands/provider/show"
	provider_update "github.com/opst/synthstudio/cmd/studio/subcommands/provider/update"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	list, err := provider_list.New()
	if err != nil {
		return nil, err
	}
	show, err := provider_show.New()
	if err != nil {
		return nil, err
	}
	add, err := provider_add.New()
	if err != nil {
		return nil, err
	}
	update, err := provider_update.New()
	if err != nil {
		return nil, err
	}
	rm, err := provider_rm.New()
	if err != nil {
		return nil, err
	}

	return flarc.NewCommandGroup(
		"Manipulate custom model endpoints.",
		struct{}{},
		flarc.WithSubcommand("list", list),
		flarc.WithSubcommand("show", show),
		flarc.WithSubcommand("add", add),
		flarc.WithSubcommand("update", update),
		flarc.WithSubcommand("rm", rm),
	)
}
