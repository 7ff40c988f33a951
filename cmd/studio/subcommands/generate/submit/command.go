package submit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/opst/synthstudio/api-types/synthesis"
	cerr "github.com/opst/synthstudio/cmd/studio/errors"
	srest "github.com/opst/synthstudio/cmd/studio/rest"
	"github.com/opst/synthstudio/cmd/studio/subcommands/common"
	dataset_find "github.com/opst/synthstudio/cmd/studio/subcommands/dataset/find"
	"github.com/opst/synthstudio/cmd/studio/subcommands/generate/internal/jobconfig"
	"github.com/opst/synthstudio/pkg/examples"
	"github.com/opst/synthstudio/pkg/submission"
	"github.com/opst/synthstudio/pkg/wizard"
	"github.com/youta-t/flarc"
)

type Flags struct {
	Regenerate      string `flag:"regenerate" alias:"r" metavar:"DATASET_FILE" help:"start from the configuration and examples of the dataset."`
	Examples        string `flag:"examples" alias:"e" metavar:"PATH" help:"JSON file in the project to be used as examples."`
	RestoreDefaults bool   `flag:"restore-defaults" help:"use default examples of the use case, ignoring --examples, --regenerate and examples in CONFIG."`
	DryRun          bool   `flag:"dry-run" alias:"n" help:"print the payload, without submitting."`
}

const ARG_CONFIG = "CONFIG"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Generate a dataset.",
		Flags{},
		flarc.Args{
			{
				Name: ARG_CONFIG, Required: false,
				Help: "yaml file of the job configuration. See \"studio generate template\". Optional with --regenerate.",
			},
		},
		common.NewTask(Task),
		flarc.WithDescription(`
Generate a dataset with the job configuration.

Empty fields are filled with the studioenv file, and then with defaults of the use case:
topics, examples, prompt and SQL schema.
Instead of the prompt, custom_prompt_instructions asks the model to write one.

Examples are chosen in order of priority:

  1. examples of the dataset given by --regenerate
  2. the file given by --examples (or example_path)
  3. examples written in CONFIG
  4. defaults of the use case

Small jobs (25 rows or less) run at once and the generated rows are printed.
Others run as a job. Use "studio dataset watch" to follow it.
`),
	)
}

// Outcome is the output of the command.
type Outcome struct {
	submission.Outcome
	Examples  string `json:"examples_source"`
	JobsUrl   string `json:"jobs_url,omitempty"`
	DryRun    bool   `json:"dry_run,omitempty"`
	IsDemo    bool   `json:"is_demo"`
	TotalRows *int   `json:"total_rows,omitempty"`
}

func Task(
	ctx context.Context,
	logger *log.Logger,
	session common.Session,
	client srest.StudioClient,
	cl flarc.Commandline[Flags],
	_ []any,
) error {
	flags := cl.Flags()
	configFile := ""
	if args := cl.Args()[ARG_CONFIG]; len(args) != 0 {
		configFile = args[0]
	}
	if configFile == "" && flags.Regenerate == "" {
		return fmt.Errorf("%w: CONFIG is required without --regenerate", flarc.ErrUsage)
	}

	base := wizard.NewJobConfiguration()
	options := []examples.Option{}
	if flags.Regenerate != "" {
		d, err := client.GetDataset(ctx, flags.Regenerate)
		if err != nil {
			return fmt.Errorf("%w: dataset %s", err, flags.Regenerate)
		}
		var rows []synthesis.Record
		base, rows = wizard.FromDataset(d)
		options = append(options, examples.WithRegeneration(rows))
	}

	conf := base
	if configFile != "" {
		c, err := jobconfig.Load(configFile, base)
		if err != nil {
			return err
		}
		conf = c
	}
	conf = jobconfig.WithDefaults(conf, session.Env.Generate)
	if flags.Examples != "" {
		conf.ExamplePath = flags.Examples
	}

	store := wizard.NewStore(conf)
	ready := wizard.SelectCanAdvance(conf, wizard.Summary)
	unsubscribe := store.Subscribe(func(s wizard.Snapshot) {
		if r := wizard.SelectCanAdvance(s.JobConfiguration, wizard.Summary); r != ready {
			ready = r
			logger.Printf("configuration #%d: ready to submit = %v", s.Version, r)
		}
	})
	defer unsubscribe()
	wiz := wizard.New(store)

	if err := jobconfig.Complete(ctx, logger, client, store); err != nil {
		return err
	}
	for _, w := range wizard.Lint(store.Snapshot().JobConfiguration) {
		logger.Printf("warning: %s", w)
	}

	acquirer := examples.New(client, options...)
	source := "configuration"
	var acq examples.Acquisition
	var err error
	switch {
	case flags.RestoreDefaults:
		acq, err = acquirer.RestoreDefaults(ctx, store)
		source = acq.Source.String()
	case flags.Regenerate != "" || conf.ExamplePath != "" || len(conf.Examples) == 0:
		acq, err = acquirer.Apply(ctx, store)
		source = acq.Source.String()
	}
	if err != nil {
		logger.Printf("failed to get examples: %s", err)
	}
	if acq.Message != "" && len(store.Snapshot().Examples) == 0 {
		logger.Printf("%s", acq.Message)
	}

	for wiz.Current() < wizard.Finish {
		if _, err := wiz.Next(); err != nil {
			return cerr.NewCuiError(
				fmt.Sprintf("the job configuration is incomplete at %s", wiz.Current()),
				cerr.WithCause(err),
				cerr.WithAdvice("fix CONFIG and run again. \"studio generate validate CONFIG\" checks it."),
			)
		}
	}

	final := store.Snapshot().JobConfiguration
	out := Outcome{
		Examples: source,
		DryRun:   flags.DryRun,
		IsDemo:   wizard.SelectIsDemo(final),
	}
	if total, ok := wizard.SelectTotalRows(final); ok {
		out.TotalRows = &total
	}

	if flags.DryRun {
		out.Payload = submission.Build(final)
		return dump(cl, logger, out)
	}

	outcome, err := submission.NewFinisher(client).Finish(ctx, final)
	if err != nil {
		if se := new(submission.SubmitError); errors.As(err, &se) {
			return cerr.NewCuiError(
				"failed to submit the job",
				cerr.WithCause(err),
				cerr.WithAdvice(submission.StartOver),
			)
		}
		return err
	}
	out.Outcome = outcome

	if outcome.IsJob() {
		logger.Printf("job %s is started", outcome.Result.JobName)
		if links := session.Links(); links.Available() {
			out.JobsUrl = links.Jobs()
			logger.Printf("see %s", out.JobsUrl)
		}
	}
	if err := session.InvalidateListings(ctx, dataset_find.CacheKey); err != nil {
		logger.Printf("failed to refresh cached datasets: %s", err)
	}
	return dump(cl, logger, out)
}

func dump(cl flarc.Commandline[Flags], logger *log.Logger, out Outcome) error {
	enc := json.NewEncoder(cl.Stdout())
	enc.SetIndent("", "    ")
	if err := enc.Encode(out); err != nil {
		logger.Panicf("fail to dump the outcome")
	}
	return nil
}
