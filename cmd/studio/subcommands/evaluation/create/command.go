package create

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/opst/synthstudio/api-types/datasets"
	"github.com/opst/synthstudio/api-types/synthesis"
	srest "github.com/opst/synthstudio/cmd/studio/rest"
	"github.com/opst/synthstudio/cmd/studio/subcommands/common"
	evaluation_find "github.com/opst/synthstudio/cmd/studio/subcommands/evaluation/find"
	"github.com/youta-t/flarc"
)

type Flags struct {
	DisplayName  string `flag:"name" alias:"n" help:"display name of the evaluation. Default: display name of the dataset."`
	ModelId      string `flag:"model" alias:"m" help:"model to evaluate with. Default: the model generated the dataset."`
	CustomPrompt string `flag:"prompt" help:"prompt for evaluation. Default: the backend's prompt for the use case."`
}

const ARG_FILE = "DATASET_FILE"

// ImportTypeLocal is the import_type of datasets stored in the project.
const ImportTypeLocal = "local"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Evaluate a dataset.",
		Flags{},
		flarc.Args{
			{Name: ARG_FILE, Required: true, Help: "generate_file_name of the dataset to be evaluated."},
		},
		common.NewTask(Task),
		flarc.WithDescription(`
Evaluate rows of a dataset with a model, scoring each row.

Small datasets (25 rows or less) are evaluated at once and the result is printed.
Others are evaluated by a job. Use "studio evaluation find" to see its status.
`),
	)
}

// Request builds the evaluation request of the dataset.
func Request(d datasets.Detail, flags Flags) synthesis.EvaluationRequest {
	req := synthesis.EvaluationRequest{
		UseCase:       d.UseCase,
		Technique:     d.Technique,
		ModelId:       d.ModelId,
		ImportPath:    d.GenerateFileName,
		ImportType:    ImportTypeLocal,
		IsDemo:        d.TotalCount <= synthesis.DemoModeThreshold,
		InferenceType: d.InferenceType,
		CaiiEndpoint:  d.CaiiEndpoint,
		CustomPrompt:  flags.CustomPrompt,
		DisplayName:   d.DisplayName,
		OutputKey:     d.OutputKey,
		OutputValue:   d.OutputValue,
	}
	if flags.DisplayName != "" {
		req.DisplayName = flags.DisplayName
	}
	if flags.ModelId != "" {
		req.ModelId = flags.ModelId
	}
	return req
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

	detail, err := client.GetDataset(ctx, file)
	if err != nil {
		return fmt.Errorf("%w: dataset %s", err, file)
	}

	result, err := client.Evaluate(ctx, Request(detail, cl.Flags()))
	if err != nil {
		return err
	}

	if result.IsJob() {
		logger.Printf("evaluation job %s is started", result.JobName)
		if links := session.Links(); links.Available() {
			logger.Printf("see %s", links.Jobs())
		}
	}
	if err := session.InvalidateListings(ctx, evaluation_find.CacheKey); err != nil {
		logger.Printf("failed to refresh cached evaluations: %s", err)
	}

	enc := json.NewEncoder(cl.Stdout())
	enc.SetIndent("", "    ")
	if err := enc.Encode(result); err != nil {
		logger.Panicf("fail to dump the evaluation result")
	}
	return nil
}
