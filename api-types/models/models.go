package models

import (
	"slices"

	"github.com/opst/synthstudio/api-types/synthesis"
)

// Catalog is the response of GET /model/model_ID.
//
// It maps a provider (inference type) to model ids available with it.
type Catalog struct {
	Models map[string][]string `json:"models"`
}

// Of returns model ids for the provider, sorted.
func (c Catalog) Of(provider string) []string {
	ids := slices.Clone(c.Models[provider])
	slices.Sort(ids)
	return ids
}

// Has reports whether the catalog knows the model for the provider.
//
// A provider missing from the catalog is treated as unknown, and then Has returns true.
func (c Catalog) Has(provider string, modelId string) bool {
	ids, ok := c.Models[provider]
	if !ok {
		return true
	}
	return slices.Contains(ids, modelId)
}

// Parameters is the response of GET /model/parameters.
type Parameters struct {
	Parameters synthesis.ModelParameters `json:"parameters"`
}
