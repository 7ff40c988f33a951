package credential

import (
	credential_list "github.com/opst/synthstudio/cmd/studio/subcommands/credential/list"
	credential_set "github.com/opst/synthstudio/cmd/studio/subcommands/credential/set"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	list, err := credential_list.New()
	if err != nil {
		return nil, err
	}
	set, err := credential_set.New()
	if err != nil {
		return nil, err
	}
	return flarc.NewCommandGroup(
		"Manipulate credentials of model providers.",
		struct{}{},
		flarc.WithSubcommand("list", list),
		flarc.WithSubcommand("set", set),
	)
}
