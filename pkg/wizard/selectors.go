package wizard

import (
	"github.com/opst/synthstudio/api-types/synthesis"
	"github.com/opst/synthstudio/api-types/usecases"
)

// SelectCanAdvance reports whether the step and all steps before it are complete.
func SelectCanAdvance(c JobConfiguration, step Step) bool {
	return CheckUntil(step+1, c) == nil
}

// SelectTechnique returns the technique derived from the workflow type.
func SelectTechnique(c JobConfiguration) synthesis.Technique {
	return c.WorkflowType.Technique()
}

// SelectDocPathValues returns paths of selected documents.
func SelectDocPathValues(c JobConfiguration) []string {
	ret := make([]string, 0, len(c.DocPaths))
	for _, d := range c.DocPaths {
		ret = append(ret, d.Value)
	}
	return ret
}

// SelectNeedsExamples reports whether the Examples step requires rows.
func SelectNeedsExamples(c JobConfiguration) bool {
	return c.WorkflowType == WorkflowCustom || c.WorkflowType == WorkflowFreeform
}

// SelectNeedsSchema reports whether the use case needs SQL schema.
func SelectNeedsSchema(c JobConfiguration) bool {
	return usecases.IsSQL(c.UseCase)
}

// SelectIsTopicBased reports whether rows are generated per topic.
func SelectIsTopicBased(c JobConfiguration) bool {
	switch c.WorkflowType {
	case WorkflowCustom:
		return false
	case WorkflowSFT:
		return len(c.DocPaths) == 0
	}
	return true
}

// SelectTotalRows returns the number of rows the job generates.
//
// The second value is false when the number is unknown yet,
// that is, the backend has not reported the size of inputs.
func SelectTotalRows(c JobConfiguration) (int, bool) {
	switch {
	case c.WorkflowType == WorkflowCustom:
		if c.TotalDatasetSize == nil {
			return 0, false
		}
		return *c.TotalDatasetSize, true
	case c.WorkflowType == WorkflowSFT && 0 < len(c.DocPaths):
		if c.DatasetSize == nil {
			return 0, false
		}
		return *c.DatasetSize, true
	default:
		return c.NumQuestions * len(c.Topics), true
	}
}

// SelectIsDemo reports whether the job runs synchronously and returns rows inline.
//
// Custom workflows with unknown size are demo.
// Supervised fine tuning over documents with unknown size is not.
func SelectIsDemo(c JobConfiguration) bool {
	total, known := SelectTotalRows(c)
	if !known {
		return c.WorkflowType == WorkflowCustom
	}
	return total <= synthesis.DemoModeThreshold
}

// Shape is a layout of example rows.
type Shape int

const (
	// TwoColumn is for {question, solution} rows.
	TwoColumn Shape = iota
	// FreeForm is for rows with arbitrary keys.
	FreeForm
)

func (s Shape) String() string {
	if s == TwoColumn {
		return "two-column"
	}
	return "free-form"
}

// ShapeOf infers the layout of rows.
//
// When all rows have exactly question and solution, it is TwoColumn. Otherwise FreeForm.
// For no rows, the workflow decides: supervised fine tuning is TwoColumn, others are FreeForm.
func ShapeOf(rows []synthesis.Record, w Workflow) Shape {
	if len(rows) == 0 {
		if w == WorkflowSFT {
			return TwoColumn
		}
		return FreeForm
	}
	for _, r := range rows {
		if _, ok := r.AsExample(); !ok {
			return FreeForm
		}
	}
	return TwoColumn
}

// SelectExampleShape returns the layout of examples in the configuration.
func SelectExampleShape(c JobConfiguration) Shape {
	return ShapeOf(c.Examples, c.WorkflowType)
}
