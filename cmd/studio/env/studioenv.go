package env

import (
	"errors"
	"fmt"
	"os"
	"time"

	cenv "github.com/caarlos0/env"
	"github.com/joho/godotenv"
	"github.com/opst/synthstudio/cmd/studio/config/profiles"
	"gopkg.in/yaml.v3"
)

var ErrInvalidStudioEnv = errors.New("invalid studioenv")

// GenerateDefaults are values used by "studio generate" when a job configuration leaves them empty.
type GenerateDefaults struct {
	ModelType                string `yaml:"model_type,omitempty"`
	ModelId                  string `yaml:"model_id,omitempty"`
	InferenceType            string `yaml:"inference_type,omitempty"`
	CaiiEndpoint             string `yaml:"caii_endpoint,omitempty"`
	OpenAICompatibleEndpoint string `yaml:"openai_compatible_endpoint,omitempty"`
	WorkflowType             string `yaml:"workflow_type,omitempty"`
	UseCase                  string `yaml:"use_case,omitempty"`
	NumQuestions             int    `yaml:"num_questions,omitempty"`
	MaxConcurrentTopics      int    `yaml:"max_concurrent_topics,omitempty"`
}

// StudioEnv is the content of a studioenv file.
type StudioEnv struct {
	Generate GenerateDefaults `yaml:"generate"`
}

func New() *StudioEnv {
	return new(StudioEnv)
}

// LoadStudioEnv reads studioenv file.
//
// When the file does not exist, it returns an empty StudioEnv.
func LoadStudioEnv(filepath string) (*StudioEnv, error) {
	env := New()

	content, err := os.ReadFile(filepath)
	if err != nil {
		if os.IsNotExist(err) {
			return env, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(content, env); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidStudioEnv, filepath, err)
	}
	if n := env.Generate.MaxConcurrentTopics; n < 0 || 100 < n {
		return nil, fmt.Errorf("%w: max_concurrent_topics should be in 1..100: %d", ErrInvalidStudioEnv, n)
	}
	if env.Generate.NumQuestions < 0 {
		return nil, fmt.Errorf("%w: num_questions should be positive: %d", ErrInvalidStudioEnv, env.Generate.NumQuestions)
	}
	return env, nil
}

// Vars are settings taken from environment variables.
type Vars struct {
	ApiUrl       string        `env:"STUDIO_API_URL"`
	WorkbenchUrl string        `env:"STUDIO_WORKBENCH_URL"`
	ProjectOwner string        `env:"STUDIO_PROJECT_OWNER"`
	ProjectName  string        `env:"STUDIO_PROJECT_NAME"`
	PollInterval time.Duration `env:"STUDIO_POLL_INTERVAL" envDefault:"15s"`

	// CacheUrl is a redis URL of the listing cache. Empty means in-process cache.
	CacheUrl string `env:"STUDIO_CACHE_URL"`
}

// LoadVars parses environment variables.
//
// dotenvs are loaded before parsing, when they exist.
// Variables already set in the process environment are not overwritten.
func LoadVars(dotenvs ...string) (Vars, error) {
	existing := []string{}
	for _, f := range dotenvs {
		if s, err := os.Stat(f); err == nil && s.Mode().IsRegular() {
			existing = append(existing, f)
		}
	}
	if 0 < len(existing) {
		if err := godotenv.Load(existing...); err != nil {
			return Vars{}, err
		}
	}

	v := Vars{}
	if err := cenv.Parse(&v); err != nil {
		return Vars{}, err
	}
	if v.PollInterval <= 0 {
		return Vars{}, fmt.Errorf("STUDIO_POLL_INTERVAL should be positive: %s", v.PollInterval)
	}
	return v, nil
}

// Apply overrides the profile with non-empty variables.
func (v Vars) Apply(p profiles.StudioProfile) profiles.StudioProfile {
	if v.ApiUrl != "" {
		p.ApiRoot = v.ApiUrl
	}
	if v.WorkbenchUrl != "" {
		p.Workbench.Url = v.WorkbenchUrl
	}
	if v.ProjectOwner != "" {
		p.Workbench.Owner = v.ProjectOwner
	}
	if v.ProjectName != "" {
		p.Workbench.Project = v.ProjectName
	}
	return p
}
