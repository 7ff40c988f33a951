package endpointfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/opst/synthstudio/api-types/providers"
	"github.com/opst/synthstudio/cmd/studio/subcommands/provider/internal/endpointfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	actual := endpointfile.Normalize(providers.Endpoint{ProviderType: "AWS Bedrock"})
	assert.Equal(t, "bedrock", actual.ProviderType)
	assert.Equal(t, endpointfile.DefaultAWSRegion, actual.AWSRegion)

	actual = endpointfile.Normalize(providers.Endpoint{ProviderType: "bedrock", AWSRegion: "eu-west-1"})
	assert.Equal(t, "eu-west-1", actual.AWSRegion)

	actual = endpointfile.Normalize(providers.Endpoint{ProviderType: "CAII"})
	assert.Equal(t, "caii", actual.ProviderType)
}

func TestValidate(t *testing.T) {
	base := providers.Endpoint{EndpointId: "e1", DisplayName: "E1", ModelId: "m"}

	for name, tc := range map[string]struct {
		patch func(providers.Endpoint) providers.Endpoint
		ok    bool
	}{
		"openai with api key": {
			patch: func(e providers.Endpoint) providers.Endpoint {
				e.ProviderType = "openai"
				e.APIKey = "sk-xxx"
				return e
			},
			ok: true,
		},
		"openai without api key": {
			patch: func(e providers.Endpoint) providers.Endpoint {
				e.ProviderType = "openai"
				return e
			},
		},
		"caii with url and token": {
			patch: func(e providers.Endpoint) providers.Endpoint {
				e.ProviderType = "caii"
				e.EndpointURL = "https://caii.example.com/v1"
				e.CDPToken = "token"
				return e
			},
			ok: true,
		},
		"caii without url": {
			patch: func(e providers.Endpoint) providers.Endpoint {
				e.ProviderType = "caii"
				e.CDPToken = "token"
				return e
			},
		},
		"openai compatible with broken url": {
			patch: func(e providers.Endpoint) providers.Endpoint {
				e.ProviderType = "openai_compatible"
				e.EndpointURL = "not a url"
				e.APIKey = "k"
				return e
			},
		},
		"bedrock without secret": {
			patch: func(e providers.Endpoint) providers.Endpoint {
				e.ProviderType = "bedrock"
				e.EndpointURL = "https://bedrock.example.com"
				e.AWSAccessKeyId = "AKIA"
				return e
			},
		},
		"unknown provider": {
			patch: func(e providers.Endpoint) providers.Endpoint {
				e.ProviderType = "mystery"
				return e
			},
		},
		"no endpoint id": {
			patch: func(e providers.Endpoint) providers.Endpoint {
				e.EndpointId = ""
				e.ProviderType = "gemini"
				e.APIKey = "k"
				return e
			},
		},
	} {
		t.Run(name, func(t *testing.T) {
			err := endpointfile.Validate(tc.patch(base))
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, endpointfile.ErrInvalidEndpoint)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "endpoint.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
endpoint_id: my-gemini
display_name: My Gemini
model_id: gemini-1.5-pro
provider_type: Gemini
api_key: g-xxx
`), 0600))

	actual, err := endpointfile.Load(path)
	require.NoError(t, err)
	assert.Equal(t, providers.Endpoint{
		EndpointId:   "my-gemini",
		DisplayName:  "My Gemini",
		ModelId:      "gemini-1.5-pro",
		ProviderType: "gemini",
		APIKey:       "g-xxx",
	}, actual)

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("endpoint_id: [\n"), 0600))
	_, err = endpointfile.Load(broken)
	assert.ErrorIs(t, err, endpointfile.ErrInvalidEndpoint)
}
