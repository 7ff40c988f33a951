package ls

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	srest "github.com/opst/synthstudio/cmd/studio/rest"
	"github.com/opst/synthstudio/cmd/studio/subcommands/common"
	"github.com/youta-t/flarc"
)

type Flags struct {
	Long bool `flag:"long" alias:"l" help:"show sizes and kinds of files, as JSON."`
}

const ARG_PATH = "PATH"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"List files in the project.",
		Flags{},
		flarc.Args{
			{Name: ARG_PATH, Required: false, Help: "directory in the project. Default: the project root."},
		},
		common.NewTask(Task),
		flarc.WithDescription(`
List files in the directory of the project.

Paths shown can be used as doc_paths and input_paths of generation configurations.
Directories are suffixed with "/".
`),
	)
}

func Task(
	ctx context.Context,
	logger *log.Logger,
	_ common.Session,
	client srest.StudioClient,
	cl flarc.Commandline[Flags],
	_ []any,
) error {
	path := ""
	if p := cl.Args()[ARG_PATH]; len(p) != 0 {
		path = p[0]
	}
	files, err := client.ListProjectFiles(ctx, path)
	if err != nil {
		return err
	}

	if cl.Flags().Long {
		enc := json.NewEncoder(cl.Stdout())
		enc.SetIndent("", "    ")
		if err := enc.Encode(files); err != nil {
			logger.Panicf("fail to dump files")
		}
		return nil
	}

	for _, f := range files {
		name := f.Path
		if f.IsDir && !strings.HasSuffix(name, "/") {
			name += "/"
		}
		fmt.Fprintln(cl.Stdout(), name)
	}
	return nil
}
