package usecases

import "github.com/opst/synthstudio/api-types/synthesis"

// Custom is the use case identifier for fully custom configuration.
const Custom = "custom"

type UseCase struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

func (u UseCase) Equal(o UseCase) bool {
	return u.Id == o.Id && u.Name == o.Name
}

// List is the response of GET /use-cases.
type List struct {
	UseCases []UseCase `json:"usecases"`
}

// Topics is the response of GET /use-cases/{use case}/topics.
type Topics struct {
	Topics []string `json:"topics"`
}

// Examples is the response of GET /{use case}/gen_examples.
type Examples struct {
	Examples []synthesis.Record `json:"examples"`
}

// Schema is the response of GET /sql_schema.
type Schema struct {
	Schema string `json:"schema"`
}

// IsSQL reports whether the use case generates SQL, which needs a schema.
func IsSQL(useCase string) bool {
	return useCase == "text2sql"
}
