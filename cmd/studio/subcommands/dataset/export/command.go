package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/opst/synthstudio/api-types/exports"
	srest "github.com/opst/synthstudio/cmd/studio/rest"
	"github.com/opst/synthstudio/cmd/studio/subcommands/common"
	export_find "github.com/opst/synthstudio/cmd/studio/subcommands/export/find"
	"github.com/youta-t/flarc"
)

type Flags struct {
	To            string `flag:"to" metavar:"huggingface|s3" help:"destination of the export."`
	DisplayName   string `flag:"name" alias:"n" help:"display name of the export. Default: display name of the dataset."`
	Repository    string `flag:"hf-repo" help:"Hugging Face repository name."`
	Username      string `flag:"hf-user" help:"Hugging Face user name."`
	Token         string `flag:"hf-token" help:"Hugging Face access token."`
	CommitMessage string `flag:"hf-commit-message" help:"commit message on Hugging Face."`
	Bucket        string `flag:"s3-bucket" help:"S3 bucket name."`
	Key           string `flag:"s3-key" help:"S3 object key."`
	CreateBucket  bool   `flag:"s3-create-bucket" help:"create the bucket if it does not exist."`
}

const ARG_FILE = "FILE"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Export a dataset to Hugging Face or S3.",
		Flags{To: string(exports.HuggingFace)},
		flarc.Args{
			{Name: ARG_FILE, Required: true, Help: "generate_file_name of the dataset to be exported."},
		},
		common.NewTask(Task),
		flarc.WithDescription(`
Export a dataset.

For Hugging Face, --hf-repo, --hf-user and --hf-token are required.
For S3, --s3-bucket and --s3-key are required.

The export runs as a job. Use "studio export find" to see its status.
`),
	)
}

// Request builds the export request of the dataset.
func Request(flags Flags, file string, displayName string, outputKey string, outputValue string) (exports.Request, error) {
	req := exports.Request{
		FilePath:    file,
		DisplayName: displayName,
		OutputKey:   outputKey,
		OutputValue: outputValue,
	}
	if flags.DisplayName != "" {
		req.DisplayName = flags.DisplayName
	}

	switch exports.Type(flags.To) {
	case exports.HuggingFace:
		if flags.Repository == "" || flags.Username == "" || flags.Token == "" {
			return exports.Request{}, fmt.Errorf("%w: --hf-repo, --hf-user and --hf-token are required", flarc.ErrUsage)
		}
		req.ExportType = []exports.Type{exports.HuggingFace}
		req.HFConfig = &exports.HFConfig{
			RepoName:      flags.Repository,
			Username:      flags.Username,
			Token:         flags.Token,
			CommitMessage: flags.CommitMessage,
		}
	case exports.S3:
		if flags.Bucket == "" || flags.Key == "" {
			return exports.Request{}, fmt.Errorf("%w: --s3-bucket and --s3-key are required", flarc.ErrUsage)
		}
		req.ExportType = []exports.Type{exports.S3}
		req.S3Config = &exports.S3Config{
			Bucket:            flags.Bucket,
			Key:               flags.Key,
			CreateIfNotExists: flags.CreateBucket,
		}
	default:
		return exports.Request{}, fmt.Errorf("%w: unknown --to: %s", flarc.ErrUsage, flags.To)
	}
	return req, nil
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

	req, err := Request(cl.Flags(), file, detail.DisplayName, detail.OutputKey, detail.OutputValue)
	if err != nil {
		return err
	}

	result, err := client.Export(ctx, req)
	if err != nil {
		return err
	}
	logger.Printf("export of %s is requested", file)

	if err := session.InvalidateListings(ctx, export_find.CacheKey); err != nil {
		logger.Printf("failed to refresh cached exports: %s", err)
	}

	enc := json.NewEncoder(cl.Stdout())
	enc.SetIndent("", "    ")
	if err := enc.Encode(result); err != nil {
		logger.Panicf("fail to dump the export result")
	}
	return nil
}
