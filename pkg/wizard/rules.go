package wizard

import "github.com/opst/synthstudio/api-types/usecases"

// settle applies clearing rules to the configuration written after prev.
//
// A field is cleared only when the write has not changed the field by itself.
func settle(prev, next JobConfiguration) JobConfiguration {
	if prev.WorkflowType != next.WorkflowType {
		if docPathsEqual(prev.DocPaths, next.DocPaths) {
			next.DocPaths = nil
		}
		if prev.InputKey == next.InputKey {
			next.InputKey = ""
		}
		next.TotalDatasetSize = nil
		next.DatasetSize = nil
	}

	if prev.Provider != "" && prev.Provider != next.Provider && prev.ModelId == next.ModelId {
		next.ModelId = ""
	}

	if prev.UseCase != next.UseCase && next.UseCase != usecases.Custom {
		if prev.ExamplePath == next.ExamplePath {
			next.ExamplePath = ""
		}
		if recordsEqual(prev.Examples, next.Examples) {
			next.Examples = nil
		}
	}

	if !docPathsEqual(prev.DocPaths, next.DocPaths) || prev.InputKey != next.InputKey {
		// sizes are stale unless the write reports new ones.
		if intEqual(prev.TotalDatasetSize, next.TotalDatasetSize) {
			next.TotalDatasetSize = nil
		}
		if intEqual(prev.DatasetSize, next.DatasetSize) {
			next.DatasetSize = nil
		}
	}

	return next
}

func intEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
