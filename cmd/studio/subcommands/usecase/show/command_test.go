package show_test

import (
	"context"
	"errors"
	"testing"

	"github.com/opst/synthstudio/api-types/synthesis"
	"github.com/opst/synthstudio/cmd/studio/rest/mock"
	"github.com/opst/synthstudio/cmd/studio/subcommands/usecase/show"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch(t *testing.T) {
	for name, testcase := range map[string]struct {
		useCase    string
		withSchema bool
	}{
		"code generation has no schema": {useCase: "code_generation"},
		"text2sql has the schema":       {useCase: "text2sql", withSchema: true},
	} {
		t.Run(name, func(t *testing.T) {
			client := mock.New(t)
			client.Impl.GetTopics = func(_ context.Context, uc string) ([]string, error) {
				return []string{uc + "-topic"}, nil
			}
			client.Impl.GetExamples = func(_ context.Context, uc string) ([]synthesis.Record, error) {
				return []synthesis.Record{{"question": "q of " + uc}}, nil
			}
			client.Impl.GetPrompt = func(_ context.Context, uc string) (string, error) {
				return "prompt of " + uc, nil
			}
			client.Impl.GetSchema = func(context.Context) (string, error) {
				return "CREATE TABLE t (id INT);", nil
			}

			actual, err := show.Fetch(context.Background(), client, testcase.useCase)
			require.NoError(t, err)

			assert.Equal(t, testcase.useCase, actual.UseCase)
			assert.Equal(t, []string{testcase.useCase + "-topic"}, actual.Topics)
			assert.Equal(t, "prompt of "+testcase.useCase, actual.Prompt)
			require.Len(t, actual.Examples, 1)
			assert.Equal(t, "q of "+testcase.useCase, actual.Examples[0]["question"])
			if testcase.withSchema {
				assert.Equal(t, "CREATE TABLE t (id INT);", actual.Schema)
				assert.Equal(t, 1, client.Calls.GetSchema)
			} else {
				assert.Empty(t, actual.Schema)
				assert.Equal(t, 0, client.Calls.GetSchema)
			}
		})
	}

	t.Run("errors from the backend are returned", func(t *testing.T) {
		expected := errors.New("fake error")
		client := mock.New(t)
		client.Impl.GetTopics = func(context.Context, string) ([]string, error) {
			return nil, expected
		}
		_, err := show.Fetch(context.Background(), client, "code_generation")
		assert.ErrorIs(t, err, expected)
		assert.Empty(t, client.Calls.GetExamples)
	})
}
