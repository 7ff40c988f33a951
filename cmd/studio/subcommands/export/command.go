package export

import (
	export_find "github.com/opst/synthstudio/cmd/studio/subcommands/export/find"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	find, err := export_find.New()
	if err != nil {
		return nil, err
	}
	return flarc.NewCommandGroup(
		"Manipulate exports of datasets. To export a dataset, use \"studio dataset export\".",
		struct{}{},
		flarc.WithSubcommand("find", find),
	)
}
