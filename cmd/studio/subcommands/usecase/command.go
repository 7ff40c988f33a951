package usecase

import (
	usecase_list "github.com/opst/synthstudio/cmd/studio/subcommands/usecase/list"
	usecase_show "github.com/opst/synthstudio/cmd/studio/subcommands/usecase/show"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	list, err := usecase_list.New()
	if err != nil {
		return nil, err
	}
	show, err := usecase_show.New()
	if err != nil {
		return nil, err
	}
	return flarc.NewCommandGroup(
		"Browse use cases.",
		struct{}{},
		flarc.WithSubcommand("list", list),
		flarc.WithSubcommand("show", show),
	)
}
