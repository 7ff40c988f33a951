package wizard

import (
	"errors"
	"fmt"
	"path"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/opst/synthstudio/api-types/synthesis"
)

var ErrStepIncomplete = errors.New("step is incomplete")

// DocumentExtensions are file types accepted as documents of supervised fine tuning.
var DocumentExtensions = []string{".pdf", ".docx", ".doc", ".txt", ".md", ".json"}

// FieldError is a field failing the gate.
type FieldError struct {
	// Field is the name of the field in job configuration files.
	Field string

	// Rule is the validation rule the field fails.
	Rule string
}

func (fe FieldError) String() string {
	switch fe.Rule {
	case "required", "required_if", "min", "gt":
		return fe.Field + " is required"
	case "json_file":
		return fe.Field + " should be .json files"
	case "document":
		return fe.Field + " should be one of " + strings.Join(DocumentExtensions, ", ")
	default:
		return fmt.Sprintf("%s is invalid (%s)", fe.Field, fe.Rule)
	}
}

// GateError tells why the step cannot be left.
type GateError struct {
	Step   Step
	Fields []FieldError
}

func (ge *GateError) Error() string {
	msgs := make([]string, 0, len(ge.Fields))
	for _, f := range ge.Fields {
		msgs = append(msgs, f.String())
	}
	return fmt.Sprintf("%s: %s: %s", ErrStepIncomplete, ge.Step, strings.Join(msgs, "; "))
}

func (ge *GateError) Unwrap() error {
	return ErrStepIncomplete
}

type configureGate struct {
	DisplayName              string   `name:"display_name" validate:"required"`
	Provider                 string   `name:"inference_type" validate:"required"`
	ModelId                  string   `name:"model_id" validate:"required"`
	WorkflowType             Workflow `name:"workflow_type" validate:"required"`
	UseCase                  string   `name:"use_case" validate:"required"`
	CaiiEndpoint             string   `name:"caii_endpoint" validate:"required_if=Provider CAII"`
	OpenAICompatibleEndpoint string   `name:"openai_compatible_endpoint" validate:"required_if=Provider openai_compatible"`

	HasInputFiles bool
	InputKey      string `name:"input_key" validate:"required_if=HasInputFiles true"`
}

// fieldRules are checks on values which do not close the gate.
type fieldRules struct {
	JsonFiles []string `name:"doc_paths" validate:"dive,json_file"`
	Documents []string `name:"doc_paths" validate:"dive,document"`

	ModelParameters     synthesis.ModelParameters `name:"model_parameters"`
	MaxConcurrentTopics int                       `name:"max_concurrent_topics" validate:"omitempty,gte=1,lte=100"`
}

type examplesGate struct {
	Examples int `name:"examples" validate:"min=1"`
}

type promptGate struct {
	CustomPrompt string `name:"custom_prompt" validate:"required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("name"); name != "" {
			return name
		}
		if name, _, _ := strings.Cut(f.Tag.Get("yaml"), ","); name != "" && name != "-" {
			return name
		}
		return f.Name
	})
	_ = v.RegisterValidation("json_file", func(fl validator.FieldLevel) bool {
		return strings.EqualFold(path.Ext(fl.Field().String()), ".json")
	})
	_ = v.RegisterValidation("document", func(fl validator.FieldLevel) bool {
		ext := strings.ToLower(path.Ext(fl.Field().String()))
		return slices.Contains(DocumentExtensions, ext)
	})
	return v
}

func gateOf(step Step, c JobConfiguration) any {
	switch step {
	case Configure:
		g := configureGate{
			DisplayName:              strings.TrimSpace(c.DisplayName),
			Provider:                 c.Provider,
			ModelId:                  c.ModelId,
			WorkflowType:             c.WorkflowType,
			UseCase:                  c.UseCase,
			CaiiEndpoint:             c.CaiiEndpoint,
			OpenAICompatibleEndpoint: c.OpenAICompatibleEndpoint,
		}
		if c.WorkflowType == WorkflowCustom {
			g.HasInputFiles = 0 < len(c.DocPaths)
			g.InputKey = c.InputKey
		}
		return g
	case Examples:
		if !SelectNeedsExamples(c) {
			return nil
		}
		return examplesGate{Examples: len(c.Examples)}
	case Prompt:
		return promptGate{CustomPrompt: strings.TrimSpace(c.CustomPrompt)}
	}
	return nil
}

// Check returns nil if the step can be left with the configuration.
//
// Otherwise, it returns *GateError wrapping ErrStepIncomplete.
// Summary and Finish have no requirements by themselves.
func Check(step Step, c JobConfiguration) error {
	g := gateOf(step, c)
	if g == nil {
		return nil
	}
	err := validate.Struct(g)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %s: %w", ErrStepIncomplete, step, err)
	}
	return &GateError{Step: step, Fields: fieldErrors(verrs)}
}

// Lint reports values which the backend may reject,
// like doc paths of unexpected file types and model parameters out of range.
//
// They do not close any gate. Zero values are left to the backend defaults.
func Lint(c JobConfiguration) []FieldError {
	r := fieldRules{MaxConcurrentTopics: c.MaxConcurrentTopics}
	if c.ModelParameters != (synthesis.ModelParameters{}) {
		r.ModelParameters = c.ModelParameters
	} else {
		r.ModelParameters = synthesis.DefaultModelParameters()
	}
	switch c.WorkflowType {
	case WorkflowCustom:
		r.JsonFiles = SelectDocPathValues(c)
	case WorkflowSFT:
		r.Documents = SelectDocPathValues(c)
	}

	err := validate.Struct(r)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	return fieldErrors(verrs)
}

func fieldErrors(verrs validator.ValidationErrors) []FieldError {
	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fieldName(fe), Rule: fe.Tag()})
	}
	return fields
}

// fieldName makes a name like "model_parameters.top_p" or "doc_paths[0]".
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return fe.Field()
}

// CheckUntil checks the gates of steps before the step.
func CheckUntil(step Step, c JobConfiguration) error {
	for _, s := range Steps {
		if step <= s {
			return nil
		}
		if err := Check(s, c); err != nil {
			return err
		}
	}
	return nil
}
