package create_test

import (
	"context"
	"strings"
	"testing"

	"github.com/opst/synthstudio/api-types/datasets"
	"github.com/opst/synthstudio/api-types/jobs"
	"github.com/opst/synthstudio/api-types/synthesis"
	"github.com/opst/synthstudio/cmd/studio/rest/mock"
	"github.com/opst/synthstudio/cmd/studio/subcommands/common"
	"github.com/opst/synthstudio/cmd/studio/subcommands/evaluation/create"
	"github.com/opst/synthstudio/cmd/studio/subcommands/internal/commandline"
	"github.com/opst/synthstudio/cmd/studio/subcommands/logger"
)

func TestRequest(t *testing.T) {
	dataset := datasets.Detail{
		GenerateFileName: "qa.json",
		DisplayName:      "QA",
		ModelId:          "claude",
		InferenceType:    "aws_bedrock",
		UseCase:          "code_generation",
		Technique:        synthesis.SFT,
		OutputKey:        "Prompt",
		OutputValue:      "Completion",
	}

	t.Run("small dataset is evaluated in demo mode", func(t *testing.T) {
		d := dataset
		d.TotalCount = synthesis.DemoModeThreshold
		actual := create.Request(d, create.Flags{})
		if !actual.IsDemo {
			t.Errorf("IsDemo should be true")
		}
		if actual.ImportPath != "qa.json" || actual.ImportType != create.ImportTypeLocal {
			t.Errorf("import: %s (%s)", actual.ImportPath, actual.ImportType)
		}
		if actual.ModelId != "claude" || actual.DisplayName != "QA" || actual.OutputKey != "Prompt" {
			t.Errorf("unexpected request: %+v", actual)
		}
	})

	t.Run("large dataset is evaluated by a job, with flags", func(t *testing.T) {
		d := dataset
		d.TotalCount = synthesis.DemoModeThreshold + 1
		actual := create.Request(d, create.Flags{DisplayName: "eval", ModelId: "llama", CustomPrompt: "score it"})
		if actual.IsDemo {
			t.Errorf("IsDemo should be false")
		}
		if actual.DisplayName != "eval" || actual.ModelId != "llama" || actual.CustomPrompt != "score it" {
			t.Errorf("unexpected request: %+v", actual)
		}
	})
}

func TestCreate(t *testing.T) {
	client := mock.New(t)
	client.Impl.GetDataset = func(context.Context, string) (datasets.Detail, error) {
		return datasets.Detail{GenerateFileName: "qa.json", TotalCount: 100}, nil
	}
	client.Impl.Evaluate = func(context.Context, synthesis.EvaluationRequest) (synthesis.Result, error) {
		return synthesis.Result{Reference: jobs.Reference{JobName: "eval-1", JobId: "j1"}}, nil
	}

	stdout := new(strings.Builder)
	err := create.Task(
		context.Background(), logger.Null(), common.Session{}, client,
		commandline.MockCommandline[create.Flags]{
			Stdout_: stdout,
			Args_:   map[string][]string{create.ARG_FILE: {"qa.json"}},
		},
		nil,
	)
	if err != nil {
		t.Fatal(err)
	}
	if len(client.Calls.Evaluate) != 1 || client.Calls.Evaluate[0].IsDemo {
		t.Errorf("Evaluate is called with %+v", client.Calls.Evaluate)
	}
	if !strings.Contains(stdout.String(), "eval-1") {
		t.Errorf("unexpected output: %s", stdout.String())
	}
}
