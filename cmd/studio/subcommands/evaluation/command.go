package evaluation

import (
	evaluation_create "github.com/opst/synthstudio/cmd/studio/subcommands/evaluation/create"
	evaluation_find "github.com/opst/synthstudio/cmd/studio/subcommands/evaluation/find"
	evaluation_rm "github.com/opst/synthstudio/cmd/studio/subcommands/evaluation/rm"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	find, err := evaluation_find.New()
	if err != nil {
		return nil, err
	}
	rm, err := evaluation_rm.New()
	if err != nil {
		return nil, err
	}
	create, err := evaluation_create.New()
	if err != nil {
		return nil, err
	}

	return flarc.NewCommandGroup(
		"Manipulate evaluations of datasets.",
		struct{}{},
		flarc.WithSubcommand("find", find),
		flarc.WithSubcommand("rm", rm),
		flarc.WithSubcommand("create", create),
	)
}
