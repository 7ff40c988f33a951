package examples_test

import (
	"context"
	"errors"
	"testing"

	"github.com/opst/synthstudio/api-types/synthesis"
	"github.com/opst/synthstudio/pkg/examples"
	"github.com/opst/synthstudio/pkg/wizard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	defaults map[string][]synthesis.Record
	files    map[string][]synthesis.Record
	err      error

	examplesCalls []string
	contentCalls  []string
}

func (f *fakeFetcher) GetExamples(_ context.Context, useCase string) ([]synthesis.Record, error) {
	f.examplesCalls = append(f.examplesCalls, useCase)
	if f.err != nil {
		return nil, f.err
	}
	return f.defaults[useCase], nil
}

func (f *fakeFetcher) GetContent(_ context.Context, path string) ([]synthesis.Record, error) {
	f.contentCalls = append(f.contentCalls, path)
	if f.err != nil {
		return nil, f.err
	}
	return f.files[path], nil
}

var (
	defaultRows  = []synthesis.Record{{"question": "default q", "solution": "default s"}}
	uploadedRows = []synthesis.Record{{"instruction": "i", "output": "o"}}
	regenRows    = []synthesis.Record{{"question": "regen q", "solution": "regen s"}}
)

func newFetcher() *fakeFetcher {
	return &fakeFetcher{
		defaults: map[string][]synthesis.Record{"code_generation": defaultRows},
		files:    map[string][]synthesis.Record{"examples/seed.json": uploadedRows},
	}
}

func TestResolve(t *testing.T) {
	type When struct {
		regeneration []synthesis.Record
		examplePath  string
		useCase      string
	}
	type Then struct {
		source examples.Source
		rows   []synthesis.Record
		shape  wizard.Shape
	}

	theory := func(when When, then Then) func(*testing.T) {
		return func(t *testing.T) {
			options := []examples.Option{}
			if when.regeneration != nil {
				options = append(options, examples.WithRegeneration(when.regeneration))
			}
			testee := examples.New(newFetcher(), options...)

			c := wizard.NewJobConfiguration()
			c.WorkflowType = wizard.WorkflowFreeform
			c.UseCase = when.useCase
			c.ExamplePath = when.examplePath

			actual, err := testee.Resolve(context.Background(), c)
			require.NoError(t, err)
			assert.Equal(t, then.source, actual.Source)
			assert.Equal(t, then.rows, actual.Rows)
			assert.Equal(t, then.shape, actual.Shape)
		}
	}

	t.Run("regeneration wins over upload and defaults", theory(
		When{regeneration: regenRows, examplePath: "examples/seed.json", useCase: "code_generation"},
		Then{source: examples.Regeneration, rows: regenRows, shape: wizard.TwoColumn},
	))

	t.Run("upload wins over defaults", theory(
		When{examplePath: "examples/seed.json", useCase: "code_generation"},
		Then{source: examples.Upload, rows: uploadedRows, shape: wizard.FreeForm},
	))

	t.Run("without regeneration and upload, defaults are used", theory(
		When{useCase: "code_generation"},
		Then{source: examples.Defaults, rows: defaultRows, shape: wizard.TwoColumn},
	))

	t.Run("custom use case has no defaults", theory(
		When{useCase: "custom"},
		Then{source: examples.Defaults, rows: []synthesis.Record{}, shape: wizard.FreeForm},
	))
}

func TestResolve_FetchFailure(t *testing.T) {
	fetcher := newFetcher()
	fetcher.err = errors.New("connection refused")
	testee := examples.New(fetcher)

	c := wizard.NewJobConfiguration()
	c.UseCase = "code_generation"

	actual, err := testee.Resolve(context.Background(), c)
	assert.ErrorIs(t, err, fetcher.err)
	assert.Empty(t, actual.Rows)
	assert.Equal(t, examples.EmptyMessage, actual.Message)
	assert.Len(t, fetcher.examplesCalls, 1, "no retry")
}

func TestRestoreDefaults(t *testing.T) {
	fetcher := newFetcher()
	testee := examples.New(fetcher)

	c := wizard.NewJobConfiguration()
	c.WorkflowType = wizard.WorkflowFreeform
	c.UseCase = "code_generation"
	c.ExamplePath = "examples/seed.json"
	store := wizard.NewStore(c)

	uploaded, err := testee.Apply(context.Background(), store)
	require.NoError(t, err)
	assert.Equal(t, examples.Upload, uploaded.Source)
	assert.Equal(t, uploadedRows, store.Snapshot().Examples)

	restored, err := testee.RestoreDefaults(context.Background(), store)
	require.NoError(t, err)
	assert.Equal(t, examples.Defaults, restored.Source)

	actual := store.Snapshot()
	assert.Equal(t, defaultRows, actual.Examples)
	assert.Empty(t, actual.ExamplePath)
}

func TestFollow(t *testing.T) {
	fetcher := newFetcher()
	fetcher.defaults["text2sql"] = []synthesis.Record{{"question": "sql q", "solution": "sql s"}}
	testee := examples.New(fetcher)

	c := wizard.NewJobConfiguration()
	c.UseCase = "code_generation"
	store := wizard.NewStore(c)

	stop := testee.Follow(context.Background(), store, func(err error) { t.Error(err) })

	store.SetUseCase("text2sql")
	assert.Equal(t, fetcher.defaults["text2sql"], store.Snapshot().Examples)
	assert.Equal(t, []string{"text2sql"}, fetcher.examplesCalls)

	store.SetDisplayName("no use case change")
	assert.Len(t, fetcher.examplesCalls, 1)

	stop()
	store.SetUseCase("code_generation")
	assert.Len(t, fetcher.examplesCalls, 1)
	assert.Empty(t, store.Snapshot().Examples, "cleared by the use case change")
}

func TestFollow_KeepsUploadAndRegeneration(t *testing.T) {
	t.Run("when a file is uploaded, use case change does not fetch defaults", func(t *testing.T) {
		fetcher := newFetcher()
		testee := examples.New(fetcher)
		c := wizard.NewJobConfiguration()
		c.UseCase = "code_generation"
		c.ExamplePath = "examples/seed.json"
		store := wizard.NewStore(c)
		defer testee.Follow(context.Background(), store, nil)()

		store.SetUseCase("custom")
		assert.Empty(t, fetcher.examplesCalls)
		assert.Equal(t, "examples/seed.json", store.Snapshot().ExamplePath)
	})

	t.Run("when regenerating, use case change does not fetch defaults", func(t *testing.T) {
		fetcher := newFetcher()
		testee := examples.New(fetcher, examples.WithRegeneration(regenRows))
		store := wizard.NewStore(wizard.NewJobConfiguration())
		defer testee.Follow(context.Background(), store, nil)()

		store.SetUseCase("code_generation")
		assert.Empty(t, fetcher.examplesCalls)
	})
}
