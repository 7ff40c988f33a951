package generate

import (
	generate_submit "github.com/opst/synthstudio/cmd/studio/subcommands/generate/submit"
	generate_template "github.com/opst/synthstudio/cmd/studio/subcommands/generate/template"
	generate_validate "github.com/opst/synthstudio/cmd/studio/subcommands/generate/validate"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	submit, err := generate_submit.New()
	if err != nil {
		return nil, err
	}
	validate, err := generate_validate.New()
	if err != nil {
		return nil, err
	}
	template, err := generate_template.New()
	if err != nil {
		return nil, err
	}
	return flarc.NewCommandGroup(
		"Generate datasets.",
		struct{}{},
		flarc.WithSubcommand("submit", submit),
		flarc.WithSubcommand("validate", validate),
		flarc.WithSubcommand("template", template),
	)
}
