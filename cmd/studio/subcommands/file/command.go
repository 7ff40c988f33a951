package file

import (
	file_ls "github.com/opst/synthstudio/cmd/studio/subcommands/file/ls"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	ls, err := file_ls.New()
	if err != nil {
		return nil, err
	}
	return flarc.NewCommandGroup(
		"Browse files in the project.",
		struct{}{},
		flarc.WithSubcommand("ls", ls),
	)
}
