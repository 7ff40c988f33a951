// Package endpointfile reads custom model endpoints from yaml files.
package endpointfile

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/opst/synthstudio/api-types/providers"
	"gopkg.in/yaml.v3"
)

var ErrInvalidEndpoint = errors.New("invalid endpoint")

// DefaultAWSRegion is set to Bedrock endpoints without aws_region.
const DefaultAWSRegion = "us-west-2"

type endpointRule struct {
	EndpointId   string `yaml:"endpoint_id" validate:"required"`
	DisplayName  string `yaml:"display_name" validate:"required"`
	ModelId      string `yaml:"model_id" validate:"required"`
	ProviderType string `yaml:"provider_type" validate:"oneof=caii bedrock openai openai_compatible gemini"`

	NeedsUrl    bool   `yaml:"-"`
	EndpointURL string `yaml:"endpoint_url" validate:"required_if=NeedsUrl true"`
	// omitempty takes effect only at the head of tags.
	EndpointURLForm string `yaml:"endpoint_url" validate:"omitempty,url"`

	IsCAII   bool   `yaml:"-"`
	CDPToken string `yaml:"cdp_token" validate:"required_if=IsCAII true"`

	IsBedrock          bool   `yaml:"-"`
	AWSAccessKeyId     string `yaml:"aws_access_key_id" validate:"required_if=IsBedrock true"`
	AWSSecretAccessKey string `yaml:"aws_secret_access_key" validate:"required_if=IsBedrock true"`

	NeedsAPIKey bool   `yaml:"-"`
	APIKey      string `yaml:"api_key" validate:"required_if=NeedsAPIKey true"`
}

var validate = func() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name, _, _ := strings.Cut(f.Tag.Get("yaml"), ","); name != "" && name != "-" {
			return name
		}
		return f.Name
	})
	return v
}()

// Normalize fills defaults of the endpoint.
//
// provider_type is accepted in any spelling providers.Parse knows,
// and is rewritten to the one the backend expects.
func Normalize(e providers.Endpoint) providers.Endpoint {
	if t, ok := providers.Parse(e.ProviderType); ok {
		e.ProviderType = t.EndpointType()
	}
	if e.ProviderType == providers.AWSBedrock.EndpointType() && e.AWSRegion == "" {
		e.AWSRegion = DefaultAWSRegion
	}
	return e
}

// Validate checks that the endpoint has everything its provider needs.
func Validate(e providers.Endpoint) error {
	rule := endpointRule{
		EndpointId:         e.EndpointId,
		DisplayName:        e.DisplayName,
		ModelId:            e.ModelId,
		ProviderType:       e.ProviderType,
		EndpointURL:        e.EndpointURL,
		EndpointURLForm:    e.EndpointURL,
		CDPToken:           e.CDPToken,
		AWSAccessKeyId:     e.AWSAccessKeyId,
		AWSSecretAccessKey: e.AWSSecretAccessKey,
		APIKey:             e.APIKey,
	}
	switch e.ProviderType {
	case "caii":
		rule.IsCAII = true
		rule.NeedsUrl = true
	case "bedrock":
		rule.IsBedrock = true
		rule.NeedsUrl = true
	case "openai_compatible":
		rule.NeedsUrl = true
		rule.NeedsAPIKey = true
	case "openai", "gemini":
		rule.NeedsAPIKey = true
	}

	err := validate.Struct(rule)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalidEndpoint, err)
	}
	msgs := []string{}
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidEndpoint, strings.Join(msgs, ", "))
}

// Read parses the endpoint in the yaml file, without validation.
func Read(path string) (providers.Endpoint, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return providers.Endpoint{}, err
	}
	e := providers.Endpoint{}
	if err := yaml.Unmarshal(buf, &e); err != nil {
		return providers.Endpoint{}, fmt.Errorf("%w: %s: %w", ErrInvalidEndpoint, path, err)
	}
	return e, nil
}

// Load reads, normalizes and validates the endpoint in the yaml file.
func Load(path string) (providers.Endpoint, error) {
	e, err := Read(path)
	if err != nil {
		return providers.Endpoint{}, err
	}
	e = Normalize(e)
	if err := Validate(e); err != nil {
		return providers.Endpoint{}, fmt.Errorf("%s: %w", path, err)
	}
	return e, nil
}
