package watch

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/opst/synthstudio/api-types/datasets"
	"github.com/opst/synthstudio/api-types/jobs"
	srest "github.com/opst/synthstudio/cmd/studio/rest"
	"github.com/opst/synthstudio/cmd/studio/subcommands/common"
	"github.com/opst/synthstudio/pkg/listing"
	"github.com/youta-t/flarc"
)

var ErrJobNotSucceeded = errors.New("the job has not succeeded")

type Flags struct {
	Quiet bool `flag:"quiet" alias:"q" help:"do not show the progress bar."`
}

const ARG_FILE = "FILE"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Wait for the generation job of a dataset.",
		Flags{},
		flarc.Args{
			{Name: ARG_FILE, Required: true, Help: "generate_file_name of the dataset."},
		},
		common.NewTask(Task),
		flarc.WithDescription(`
Follow the generation job of the dataset until it finishes, showing generated rows.

It fails when the job is stopped or timed out.
`),
	)
}

var errDone = errors.New("done")

func Task(
	ctx context.Context,
	logger *log.Logger,
	session common.Session,
	client srest.StudioClient,
	cl flarc.Commandline[Flags],
	_ []any,
) error {
	file := cl.Args()[ARG_FILE][0]

	var bar *pb.ProgressBar
	if !cl.Flags().Quiet {
		bar = pb.New64(0)
		bar.SetWriter(cl.Stderr())
		bar.SetRefreshRate(time.Second)
		bar.Set("prefix", file+":")
		if err := bar.Err(); err != nil {
			return err
		}
		bar.Start()
		defer bar.Finish()
	}

	var last datasets.Detail
	poller := listing.NewPoller(
		func(ctx context.Context) ([]datasets.Detail, error) {
			d, err := client.GetDataset(ctx, file)
			if err != nil {
				return nil, err
			}
			return []datasets.Detail{d}, nil
		},
		listing.WithInterval[datasets.Detail](session.PollInterval()),
	)
	poller.Subscribe(listing.Anything[datasets.Detail](), func(ds []datasets.Detail) error {
		if len(ds) == 0 {
			return nil
		}
		last = ds[0]
		done, total := last.Progress()
		if bar != nil {
			bar.SetTotal(int64(total))
			bar.SetCurrent(int64(done))
			bar.Set("suffix", last.JobStatus.String())
		}
		if last.JobStatus.Terminal() || last.JobStatus == jobs.None {
			return errDone
		}
		return nil
	})

	if err := poller.Start(ctx); !errors.Is(err, errDone) {
		return err
	}

	icon := listing.StatusIcon(last.JobStatus, listing.DatasetOverrides)
	logger.Printf("%s: %s", file, icon.Tooltip)
	if last.JobStatus != jobs.Succeeded && last.JobStatus != jobs.None {
		advice := ""
		if links := session.Links(); links.Available() {
			advice = " see " + links.Jobs()
		}
		return fmt.Errorf("%w: %s is %s.%s", ErrJobNotSucceeded, file, last.JobStatus, advice)
	}
	return nil
}
