package model

import (
	model_list "github.com/opst/synthstudio/cmd/studio/subcommands/model/list"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	list, err := model_list.New()
	if err != nil {
		return nil, err
	}
	return flarc.NewCommandGroup(
		"Browse models.",
		struct{}{},
		flarc.WithSubcommand("list", list),
	)
}
