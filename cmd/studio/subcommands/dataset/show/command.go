package show

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/opst/synthstudio/api-types/datasets"
	srest "github.com/opst/synthstudio/cmd/studio/rest"
	"github.com/opst/synthstudio/cmd/studio/subcommands/common"
	"github.com/youta-t/flarc"
)

type Flags struct {
	Content bool `flag:"content" alias:"c" help:"show generated rows instead of the dataset record."`
}

const ARG_FILE = "FILE"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Show a dataset.",
		Flags{},
		flarc.Args{
			{Name: ARG_FILE, Required: true, Help: "generate_file_name of the dataset."},
		},
		common.NewTask(Task),
		flarc.WithDescription(`
Show the record of the dataset: the configuration it was generated with, and the job status.

With --content, it shows the generated rows.
`),
	)
}

// Shown is the output of the command.
type Shown struct {
	datasets.Detail
	Preview string `json:"preview_url,omitempty"`
}

func Task(
	ctx context.Context,
	logger *log.Logger,
	session common.Session,
	client srest.StudioClient,
	cl flarc.Commandline[Flags],
	_ []any,
) error {
	file := cl.Args()[ARG_FILE][0]

	enc := json.NewEncoder(cl.Stdout())
	enc.SetIndent("", "    ")

	if cl.Flags().Content {
		content, err := client.GetDatasetContent(ctx, file)
		if err != nil {
			return fmt.Errorf("%w: dataset %s", err, file)
		}
		if err := enc.Encode(content); err != nil {
			logger.Panicf("fail to dump the dataset content")
		}
		return nil
	}

	detail, err := client.GetDataset(ctx, file)
	if err != nil {
		return fmt.Errorf("%w: dataset %s", err, file)
	}
	shown := Shown{Detail: detail}
	if links := session.Links(); links.Available() {
		shown.Preview = links.Preview(detail.FileName())
	}
	if err := enc.Encode(shown); err != nil {
		logger.Panicf("fail to dump the dataset")
	}
	return nil
}
