package providers

import "slices"

// Type is a kind of model provider.
type Type string

const (
	AWSBedrock       Type = "aws_bedrock"
	CAII             Type = "CAII"
	OpenAI           Type = "openai"
	OpenAICompatible Type = "openai_compatible"
	Gemini           Type = "gemini"
)

// Types lists all provider types, in display order.
var Types = []Type{CAII, OpenAI, OpenAICompatible, Gemini, AWSBedrock}

// Parse reads a provider type, accepting labels and spellings used by the backend.
func Parse(s string) (Type, bool) {
	switch s {
	case "aws_bedrock", "bedrock", "Bedrock", "AWS Bedrock":
		return AWSBedrock, true
	case "CAII", "caii", "Cloudera":
		return CAII, true
	case "openai", "OpenAI":
		return OpenAI, true
	case "openai_compatible", "OpenAI Compatible":
		return OpenAICompatible, true
	case "gemini", "Gemini":
		return Gemini, true
	}
	return "", false
}

func (t Type) Label() string {
	switch t {
	case AWSBedrock:
		return "AWS Bedrock"
	case CAII:
		return "Cloudera AI Inference"
	case OpenAI:
		return "OpenAI"
	case OpenAICompatible:
		return "OpenAI Compatible"
	case Gemini:
		return "Gemini"
	default:
		return string(t)
	}
}

// EndpointType is the provider_type value of custom endpoints.
func (t Type) EndpointType() string {
	switch t {
	case CAII:
		return "caii"
	case AWSBedrock:
		return "bedrock"
	default:
		return string(t)
	}
}

// CredentialKeys are credential keys needed to use the provider.
func (t Type) CredentialKeys() []string {
	switch t {
	case OpenAI:
		return []string{"OPENAI_API_KEY"}
	case Gemini:
		return []string{"GEMINI_API_KEY"}
	case CAII:
		return []string{"CDP_TOKEN"}
	case OpenAICompatible:
		return []string{"OpenAI_Endpoint_Compatible_Key"}
	case AWSBedrock:
		return []string{"AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY"}
	default:
		return nil
	}
}

// CredentialKeys known by the backend.
var CredentialKeys = []string{
	"CDP_TOKEN",
	"OPENAI_API_KEY",
	"GEMINI_API_KEY",
	"OpenAI_Endpoint_Compatible_Key",
	"AWS_ACCESS_KEY_ID",
	"AWS_SECRET_ACCESS_KEY",
	"AWS_REGION",
}

func IsCredentialKey(key string) bool {
	return slices.Contains(CredentialKeys, key)
}

// CredentialStatus is an element of GET /credentials.
type CredentialStatus struct {
	Key   string `json:"key"`
	IsSet bool   `json:"is_set"`
}

// SetCredentials is the body of POST /credentials.
type SetCredentials struct {
	Credentials map[string]string `json:"credentials"`
}

// SetCredentialsResult is the response of POST /credentials.
type SetCredentialsResult struct {
	Updated int `json:"updated"`
	New     int `json:"new"`
}

// Credential tells whether the provider is configured.
type Credential struct {
	Provider Type `json:"provider_type"`
	IsSet    bool `json:"is_set"`
}

// CredentialsOf derives per-provider credentials from credential key statuses.
//
// A provider is configured when all of its keys are set.
func CredentialsOf(statuses []CredentialStatus) []Credential {
	set := map[string]bool{}
	for _, s := range statuses {
		set[s.Key] = s.IsSet
	}

	ret := make([]Credential, 0, len(Types))
	for _, t := range Types {
		isSet := true
		for _, k := range t.CredentialKeys() {
			if !set[k] {
				isSet = false
				break
			}
		}
		ret = append(ret, Credential{Provider: t, IsSet: isSet})
	}
	return ret
}

// Endpoint is a custom model endpoint.
//
// Secret fields are sent on creation and update, and never returned by the backend.
type Endpoint struct {
	EndpointId   string `json:"endpoint_id" yaml:"endpoint_id"`
	DisplayName  string `json:"display_name" yaml:"display_name"`
	ModelId      string `json:"model_id" yaml:"model_id"`
	ProviderType string `json:"provider_type" yaml:"provider_type"`
	EndpointURL  string `json:"endpoint_url,omitempty" yaml:"endpoint_url,omitempty"`
	CreatedAt    string `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt    string `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`

	APIKey             string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
	CDPToken           string `json:"cdp_token,omitempty" yaml:"cdp_token,omitempty"`
	AWSAccessKeyId     string `json:"aws_access_key_id,omitempty" yaml:"aws_access_key_id,omitempty"`
	AWSSecretAccessKey string `json:"aws_secret_access_key,omitempty" yaml:"aws_secret_access_key,omitempty"`
	AWSRegion          string `json:"aws_region,omitempty" yaml:"aws_region,omitempty"`
}

func (e Endpoint) Equal(o Endpoint) bool {
	return e == o
}

// Redacted returns the endpoint without secrets.
func (e Endpoint) Redacted() Endpoint {
	e.APIKey = ""
	e.CDPToken = ""
	e.AWSAccessKeyId = ""
	e.AWSSecretAccessKey = ""
	return e
}

// AddEndpoint is the body of POST /add_model_endpoint.
type AddEndpoint struct {
	EndpointConfig Endpoint `json:"endpoint_config"`
}

// EndpointList is the response of GET /custom_model_endpoints.
type EndpointList struct {
	Endpoints []Endpoint `json:"endpoints"`
	Total     int        `json:"total"`
}
