package update_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/opst/synthstudio/api-types/providers"
	"github.com/opst/synthstudio/cmd/studio/rest/mock"
	"github.com/opst/synthstudio/cmd/studio/subcommands/common"
	"github.com/opst/synthstudio/cmd/studio/subcommands/internal/commandline"
	"github.com/opst/synthstudio/cmd/studio/subcommands/logger"
	"github.com/opst/synthstudio/cmd/studio/subcommands/provider/internal/endpointfile"
	"github.com/opst/synthstudio/cmd/studio/subcommands/provider/update"
	"github.com/youta-t/flarc"
)

func endpointFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "endpoint.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestUpdate(t *testing.T) {
	type When struct {
		id      string
		content string
	}
	type Then struct {
		sent *providers.Endpoint
		err  error
	}

	theory := func(when When, then Then) func(*testing.T) {
		return func(t *testing.T) {
			client := mock.New(t)
			client.Impl.UpdateEndpoint = func(_ context.Context, id string, ep providers.Endpoint) (providers.Endpoint, error) {
				ep.CreatedAt = "2024-01-01T00:00:00Z"
				return ep, nil
			}

			stdout := new(strings.Builder)
			err := update.Task(
				context.Background(), logger.Null(), common.Session{}, client,
				commandline.MockCommandline[struct{}]{
					Stdout_: stdout,
					Args_: map[string][]string{
						update.ARG_ID:   {when.id},
						update.ARG_FILE: {endpointFile(t, when.content)},
					},
				},
				nil,
			)

			if then.err != nil {
				if !errors.Is(err, then.err) {
					t.Errorf("unexpected error: %v", err)
				}
				if len(client.Calls.UpdateEndpoint) != 0 {
					t.Errorf("UpdateEndpoint is called")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}

			if len(client.Calls.UpdateEndpoint) != 1 {
				t.Fatalf("UpdateEndpoint is called %d times", len(client.Calls.UpdateEndpoint))
			}
			call := client.Calls.UpdateEndpoint[0]
			if call.EndpointId != when.id {
				t.Errorf("endpoint id: %s", call.EndpointId)
			}
			if !call.Endpoint.Equal(*then.sent) {
				t.Errorf("sent endpoint:\n===actual===\n%+v\n===expected===\n%+v", call.Endpoint, *then.sent)
			}

			shown := providers.Endpoint{}
			if err := json.Unmarshal([]byte(stdout.String()), &shown); err != nil {
				t.Fatal(err)
			}
			if shown.APIKey != "" || shown.AWSSecretAccessKey != "" || shown.AWSAccessKeyId != "" || shown.CDPToken != "" {
				t.Errorf("secrets are shown: %+v", shown)
			}
		}
	}

	t.Run("endpoint without id is updated with the id in args", theory(
		When{
			id: "ep-1",
			content: `
display_name: haiku
model_id: us.anthropic.claude-3-5-haiku-20241022-v1:0
provider_type: AWS Bedrock
endpoint_url: https://bedrock-runtime.us-west-2.amazonaws.com
aws_access_key_id: AKIA
aws_secret_access_key: secret
`,
		},
		Then{
			sent: &providers.Endpoint{
				EndpointId:         "ep-1",
				DisplayName:        "haiku",
				ModelId:            "us.anthropic.claude-3-5-haiku-20241022-v1:0",
				ProviderType:       "bedrock",
				EndpointURL:        "https://bedrock-runtime.us-west-2.amazonaws.com",
				AWSAccessKeyId:     "AKIA",
				AWSSecretAccessKey: "secret",
				AWSRegion:          endpointfile.DefaultAWSRegion,
			},
		},
	))

	t.Run("endpoint with the same id is updated", theory(
		When{
			id: "ep-2",
			content: `
endpoint_id: ep-2
display_name: gpt
model_id: gpt-4o
provider_type: openai
api_key: sk-1
`,
		},
		Then{
			sent: &providers.Endpoint{
				EndpointId:   "ep-2",
				DisplayName:  "gpt",
				ModelId:      "gpt-4o",
				ProviderType: "openai",
				APIKey:       "sk-1",
			},
		},
	))

	t.Run("endpoint with another id is usage error", theory(
		When{
			id: "ep-3",
			content: `
endpoint_id: ep-4
display_name: gpt
model_id: gpt-4o
provider_type: openai
api_key: sk-1
`,
		},
		Then{err: flarc.ErrUsage},
	))

	t.Run("endpoint lacking secrets of its provider is invalid", theory(
		When{
			id: "ep-5",
			content: `
display_name: gpt
model_id: gpt-4o
provider_type: openai
`,
		},
		Then{err: endpointfile.ErrInvalidEndpoint},
	))
}
