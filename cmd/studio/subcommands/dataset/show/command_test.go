package show_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/opst/synthstudio/api-types/datasets"
	"github.com/opst/synthstudio/api-types/jobs"
	"github.com/opst/synthstudio/cmd/studio/config/profiles"
	"github.com/opst/synthstudio/cmd/studio/rest/mock"
	"github.com/opst/synthstudio/cmd/studio/subcommands/common"
	"github.com/opst/synthstudio/cmd/studio/subcommands/dataset/show"
	"github.com/opst/synthstudio/cmd/studio/subcommands/internal/commandline"
	"github.com/opst/synthstudio/cmd/studio/subcommands/logger"
)

func TestShow(t *testing.T) {
	detail := datasets.Detail{
		GenerateFileName: "qa_pairs_20240101.json",
		DisplayName:      "qa",
		UseCase:          "custom",
		TotalCount:       10,
		JobStatus:        jobs.Succeeded,
	}

	t.Run("it shows the dataset with its preview url", func(t *testing.T) {
		client := mock.New(t)
		client.Impl.GetDataset = func(_ context.Context, file string) (datasets.Detail, error) {
			return detail, nil
		}
		session := common.Session{}
		session.Profile.Workbench = profiles.Workbench{
			Url: "https://ml.example.com/", Owner: "alice", Project: "studio",
		}

		stdout := new(strings.Builder)
		err := show.Task(
			context.Background(), logger.Null(), session, client,
			commandline.MockCommandline[show.Flags]{
				Stdout_: stdout,
				Args_:   map[string][]string{show.ARG_FILE: {detail.GenerateFileName}},
			},
			nil,
		)
		if err != nil {
			t.Fatal(err)
		}

		actual := map[string]any{}
		if err := json.Unmarshal([]byte(stdout.String()), &actual); err != nil {
			t.Fatal(err)
		}
		if actual["generate_file_name"] != detail.GenerateFileName {
			t.Errorf("generate_file_name: %v", actual["generate_file_name"])
		}
		expectedUrl := "https://ml.example.com/alice/studio/preview/qa_pairs_20240101.json"
		if actual["preview_url"] != expectedUrl {
			t.Errorf("preview_url: %v", actual["preview_url"])
		}
		if strings.Join(client.Calls.GetDataset, ",") != detail.GenerateFileName {
			t.Errorf("GetDataset is called with %v", client.Calls.GetDataset)
		}
	})

	t.Run("with --content, it shows rows", func(t *testing.T) {
		client := mock.New(t)
		client.Impl.GetDatasetContent = func(context.Context, string) (datasets.Content, error) {
			return datasets.Content{}, nil
		}
		stdout := new(strings.Builder)
		err := show.Task(
			context.Background(), logger.Null(), common.Session{}, client,
			commandline.MockCommandline[show.Flags]{
				Stdout_: stdout,
				Flags_:  show.Flags{Content: true},
				Args_:   map[string][]string{show.ARG_FILE: {"x.json"}},
			},
			nil,
		)
		if err != nil {
			t.Fatal(err)
		}
		if len(client.Calls.GetDataset) != 0 {
			t.Errorf("GetDataset should not be called")
		}
		if strings.Join(client.Calls.GetDatasetContent, ",") != "x.json" {
			t.Errorf("GetDatasetContent is called with %v", client.Calls.GetDatasetContent)
		}
	})

	t.Run("errors are passed through", func(t *testing.T) {
		expected := errors.New("fake error")
		client := mock.New(t)
		client.Impl.GetDataset = func(context.Context, string) (datasets.Detail, error) {
			return datasets.Detail{}, expected
		}
		err := show.Task(
			context.Background(), logger.Null(), common.Session{}, client,
			commandline.MockCommandline[show.Flags]{
				Stdout_: new(strings.Builder),
				Args_:   map[string][]string{show.ARG_FILE: {"x.json"}},
			},
			nil,
		)
		if !errors.Is(err, expected) {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
