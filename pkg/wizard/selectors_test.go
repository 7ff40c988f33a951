package wizard_test

import (
	"testing"

	"github.com/opst/synthstudio/api-types/synthesis"
	"github.com/opst/synthstudio/pkg/wizard"
	"github.com/stretchr/testify/assert"
)

func TestSelectIsDemo(t *testing.T) {
	size := func(n int) *int { return &n }

	type When struct {
		workflow     wizard.Workflow
		numQuestions int
		topics       int
		docPaths     int
		total        *int
		datasetSize  *int
	}

	theory := func(when When, then bool) func(*testing.T) {
		return func(t *testing.T) {
			c := wizard.NewJobConfiguration()
			c.WorkflowType = when.workflow
			c.NumQuestions = when.numQuestions
			c.Topics = make([]string, when.topics)
			for i := 0; i < when.docPaths; i++ {
				c.DocPaths = append(c.DocPaths, wizard.NewDocPath("docs/manual.pdf"))
			}
			c.TotalDatasetSize = when.total
			c.DatasetSize = when.datasetSize

			assert.Equal(t, then, wizard.SelectIsDemo(c))
		}
	}

	t.Run("5 questions x 3 topics is demo", theory(
		When{workflow: wizard.WorkflowSFT, numQuestions: 5, topics: 3}, true,
	))
	t.Run("10 questions x 5 topics is not demo", theory(
		When{workflow: wizard.WorkflowSFT, numQuestions: 10, topics: 5}, false,
	))
	t.Run("25 rows is demo", theory(
		When{workflow: wizard.WorkflowFreeform, numQuestions: 5, topics: 5}, true,
	))
	t.Run("custom workflow with 25 rows is demo", theory(
		When{workflow: wizard.WorkflowCustom, total: size(25)}, true,
	))
	t.Run("custom workflow with 26 rows is not demo", theory(
		When{workflow: wizard.WorkflowCustom, total: size(26)}, false,
	))
	t.Run("custom workflow with unknown size is demo", theory(
		When{workflow: wizard.WorkflowCustom}, true,
	))
	t.Run("supervised fine tuning over documents uses dataset size", theory(
		When{workflow: wizard.WorkflowSFT, docPaths: 1, numQuestions: 1, topics: 1, datasetSize: size(100)}, false,
	))
	t.Run("supervised fine tuning over small documents is demo", theory(
		When{workflow: wizard.WorkflowSFT, docPaths: 2, datasetSize: size(10)}, true,
	))
}

func TestShapeOf(t *testing.T) {
	qa := synthesis.Record{"question": "q", "solution": "s"}

	assert.Equal(t, wizard.TwoColumn, wizard.ShapeOf([]synthesis.Record{qa, qa}, wizard.WorkflowFreeform))
	assert.Equal(t, wizard.FreeForm, wizard.ShapeOf(
		[]synthesis.Record{{"instruction": "i", "output": "o"}}, wizard.WorkflowSFT,
	))
	assert.Equal(t, wizard.FreeForm, wizard.ShapeOf(
		[]synthesis.Record{qa, {"question": "q", "solution": "s", "topic": "t"}}, wizard.WorkflowSFT,
	), "mixed keys")
	assert.Equal(t, wizard.TwoColumn, wizard.ShapeOf(nil, wizard.WorkflowSFT))
	assert.Equal(t, wizard.FreeForm, wizard.ShapeOf(nil, wizard.WorkflowFreeform))
	assert.Equal(t, wizard.FreeForm, wizard.ShapeOf(nil, wizard.WorkflowCustom))
}

func TestSelectTechnique(t *testing.T) {
	for w, expected := range map[wizard.Workflow]synthesis.Technique{
		wizard.WorkflowSFT:      synthesis.SFT,
		wizard.WorkflowCustom:   synthesis.CustomWorkflow,
		wizard.WorkflowFreeform: synthesis.Freeform,
	} {
		c := wizard.NewJobConfiguration()
		c.WorkflowType = w
		assert.Equal(t, expected, wizard.SelectTechnique(c))
	}
}
