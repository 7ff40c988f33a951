package fakebackend_test

import (
	"context"
	"testing"
	"time"

	"github.com/opst/synthstudio/api-types/exports"
	"github.com/opst/synthstudio/api-types/jobs"
	"github.com/opst/synthstudio/api-types/providers"
	"github.com/opst/synthstudio/api-types/synthesis"
	sprof "github.com/opst/synthstudio/cmd/studio/config/profiles"
	"github.com/opst/synthstudio/cmd/studio/rest"
	"github.com/opst/synthstudio/internal/fakebackend"
	"github.com/opst/synthstudio/pkg/submission"
	"github.com/opst/synthstudio/pkg/utils/try"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func start(t *testing.T) (*fakebackend.Backend, rest.StudioClient) {
	t.Helper()
	b := fakebackend.New()
	b.Now = func() time.Time { return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC) }
	root := fakebackend.Start(t, b)
	client := try.To(rest.NewClient(&sprof.StudioProfile{ApiRoot: root})).OrFatal(t)
	return b, client
}

func TestUseCases(t *testing.T) {
	ctx := context.Background()
	_, client := start(t)

	ucs, err := client.ListUseCases(ctx)
	require.NoError(t, err)
	assert.Len(t, ucs, 3)

	topics, err := client.GetTopics(ctx, "code_generation")
	require.NoError(t, err)
	assert.Contains(t, topics, "Algorithms")

	examples, err := client.GetExamples(ctx, "text2sql")
	require.NoError(t, err)
	assert.Len(t, examples, 1)

	prompt, err := client.GetPrompt(ctx, "code_generation")
	require.NoError(t, err)
	assert.NotEmpty(t, prompt)

	_, err = client.GetTopics(ctx, "no-such-use-case")
	assert.ErrorAs(t, err, new(*rest.StatusError))

	catalog, err := client.GetModels(ctx)
	require.NoError(t, err)
	assert.True(t, catalog.Has("openai", "gpt-4o"))
}

func TestGeneration(t *testing.T) {
	ctx := context.Background()

	t.Run("demo requests answer rows by topic", func(t *testing.T) {
		b, client := start(t)
		result, err := client.Submit(ctx, submission.EndpointGenerate, synthesis.Request{
			UseCase: "code_generation", ModelId: "gpt-4o", NumQuestions: 2,
			Topics: []string{"Algorithms", "Joins"}, IsDemo: true,
		})
		require.NoError(t, err)
		assert.False(t, result.IsJob())
		assert.Equal(t, 4, result.Results.Len())
		assert.Empty(t, b.Datasets())
		assert.Len(t, b.Submitted(), 1)
	})

	t.Run("jobs progress by reads of the dataset", func(t *testing.T) {
		_, client := start(t)
		result, err := client.Submit(ctx, submission.EndpointFreeform, synthesis.Request{
			UseCase: "code_generation", ModelId: "gpt-4o", NumQuestions: 10,
			Topics: []string{"Algorithms", "Joins", "Async"}, DisplayName: "big",
		})
		require.NoError(t, err)
		require.True(t, result.IsJob())

		ds, err := client.ListDatasets(ctx)
		require.NoError(t, err)
		require.Len(t, ds, 1)
		file := ds[0].GenerateFileName
		assert.Equal(t, "big", ds[0].DisplayName)
		assert.Equal(t, 30, ds[0].TotalCount)

		for _, expected := range []jobs.Status{jobs.Scheduling, jobs.Running, jobs.Succeeded, jobs.Succeeded} {
			d, err := client.GetDataset(ctx, file)
			require.NoError(t, err)
			assert.Equal(t, expected, d.JobStatus)
		}
		d, err := client.GetDataset(ctx, file)
		require.NoError(t, err)
		done, total := d.Progress()
		assert.Equal(t, 30, done)
		assert.Equal(t, 30, total)

		content, err := client.GetDatasetContent(ctx, file)
		require.NoError(t, err)
		assert.Len(t, content.Rows, 30)

		_, err = client.Export(ctx, exports.Request{
			ExportType: []exports.Type{exports.HuggingFace},
			FilePath:   file,
			HFConfig:   &exports.HFConfig{RepoName: "repo", Username: "alice", Token: "hf_x"},
		})
		require.NoError(t, err)
		exs, err := client.ListExports(ctx)
		require.NoError(t, err)
		require.Len(t, exs, 1)
		assert.Equal(t, "alice/repo", exs[0].HFExportPath)

		require.NoError(t, client.DeleteDataset(ctx, file))
		_, err = client.GetDataset(ctx, file)
		assert.Error(t, err)
	})

	t.Run("requests without model are rejected", func(t *testing.T) {
		_, client := start(t)
		_, err := client.Submit(ctx, submission.EndpointGenerate, synthesis.Request{UseCase: "code_generation"})
		var se *rest.StatusError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, 400, se.Code)
	})
}

func TestProjectFiles(t *testing.T) {
	ctx := context.Background()
	_, client := start(t)

	root, err := client.ListProjectFiles(ctx, "")
	require.NoError(t, err)
	assert.Len(t, root, 2)

	rows, err := client.GetContent(ctx, "data/seeds.json")
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	size, err := client.DatasetSize(ctx, synthesis.DatasetSizeRequest{InputPath: []string{"data/seeds.json"}})
	require.NoError(t, err)
	assert.Equal(t, 2, size)
}

func TestSettings(t *testing.T) {
	ctx := context.Background()
	_, client := start(t)

	result, err := client.SetCredentials(ctx, map[string]string{"OPENAI_API_KEY": "sk-1"})
	require.NoError(t, err)
	assert.Equal(t, providers.SetCredentialsResult{New: 1}, result)
	result, err = client.SetCredentials(ctx, map[string]string{"OPENAI_API_KEY": "sk-2", "GEMINI_API_KEY": "g"})
	require.NoError(t, err)
	assert.Equal(t, providers.SetCredentialsResult{Updated: 1, New: 1}, result)

	statuses, err := client.ListCredentials(ctx)
	require.NoError(t, err)
	assert.Contains(t, statuses, providers.CredentialStatus{Key: "OPENAI_API_KEY", IsSet: true})
	assert.Contains(t, statuses, providers.CredentialStatus{Key: "CDP_TOKEN", IsSet: false})

	added, err := client.AddEndpoint(ctx, providers.Endpoint{
		EndpointId: "ep-1", DisplayName: "mine", ModelId: "gpt-4o",
		ProviderType: "openai", APIKey: "sk-secret",
	})
	require.NoError(t, err)
	assert.Empty(t, added.APIKey)
	assert.Equal(t, "2024-01-01T12:00:00Z", added.CreatedAt)

	_, err = client.AddEndpoint(ctx, providers.Endpoint{EndpointId: "ep-1", ModelId: "gpt-4o", ProviderType: "openai"})
	assert.Error(t, err)

	updated, err := client.UpdateEndpoint(ctx, "ep-1", providers.Endpoint{
		DisplayName: "renamed", ModelId: "gpt-4o-mini", ProviderType: "openai",
	})
	require.NoError(t, err)
	assert.Equal(t, "ep-1", updated.EndpointId)
	assert.Equal(t, "renamed", updated.DisplayName)

	eps, err := client.ListEndpoints(ctx)
	require.NoError(t, err)
	require.Len(t, eps, 1)
	assert.Equal(t, "gpt-4o-mini", eps[0].ModelId)

	require.NoError(t, client.DeleteEndpoint(ctx, "ep-1"))
	_, err = client.GetEndpoint(ctx, "ep-1")
	assert.Error(t, err)
}
