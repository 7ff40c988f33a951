package wizard_test

import (
	"testing"

	"github.com/opst/synthstudio/api-types/synthesis"
	"github.com/opst/synthstudio/pkg/wizard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func configured() wizard.JobConfiguration {
	c := wizard.NewJobConfiguration()
	c.DisplayName = "my dataset"
	c.Provider = "openai"
	c.ModelId = "gpt-4o"
	c.WorkflowType = wizard.WorkflowCustom
	c.UseCase = "custom"
	c.DocPaths = []wizard.DocPath{wizard.NewDocPath("data/input.json")}
	c.InputKey = "Prompt"
	c.Examples = []synthesis.Record{{"question": "q", "solution": "s"}}
	c.CustomPrompt = "write answers"
	return c
}

func TestStore_SnapshotIsImmutable(t *testing.T) {
	store := wizard.NewStore(configured())

	snapshot := store.Snapshot()
	snapshot.DocPaths[0].Value = "tampered.json"
	snapshot.Examples[0]["question"] = "tampered"
	snapshot.Topics = append(snapshot.Topics, "tampered")

	again := store.Snapshot()
	assert.Equal(t, "data/input.json", again.DocPaths[0].Value)
	assert.Equal(t, "q", again.Examples[0]["question"])
	assert.Empty(t, again.Topics)
}

func TestStore_Subscribe(t *testing.T) {
	store := wizard.NewStore(wizard.NewJobConfiguration())

	order := []string{}
	seen := []wizard.Snapshot{}
	unsubscribeA := store.Subscribe(func(s wizard.Snapshot) {
		order = append(order, "a")
		seen = append(seen, s)
	})
	store.Subscribe(func(wizard.Snapshot) { order = append(order, "b") })

	first := store.SetDisplayName("first")
	require.Len(t, seen, 1)
	assert.Equal(t, "first", seen[0].DisplayName)
	assert.Equal(t, first.Version, seen[0].Version)
	assert.Equal(t, []string{"a", "b"}, order)

	unsubscribeA()
	second := store.SetDisplayName("second")
	assert.Len(t, seen, 1)
	assert.Equal(t, []string{"a", "b", "b"}, order)
	assert.Less(t, first.Version, second.Version)
}

func TestStore_ListenerMayUpdate(t *testing.T) {
	store := wizard.NewStore(wizard.NewJobConfiguration())
	store.Subscribe(func(s wizard.Snapshot) {
		if s.UseCase == "code_generation" && len(s.Topics) == 0 {
			store.Update(func(c wizard.JobConfiguration) wizard.JobConfiguration {
				c.Topics = []string{"Algorithms"}
				return c
			})
		}
	})

	store.SetUseCase("code_generation")
	assert.Equal(t, []string{"Algorithms"}, store.Snapshot().Topics)
}

func TestStore_ClearingRules(t *testing.T) {
	type Then struct {
		docPaths    []wizard.DocPath
		inputKey    string
		modelId     string
		examplePath string
		examples    int
	}
	theory := func(when func(*wizard.Store), then Then) func(*testing.T) {
		return func(t *testing.T) {
			initial := configured()
			initial.ExamplePath = "examples/seed.json"
			size := 10
			initial.TotalDatasetSize = &size
			store := wizard.NewStore(initial)

			when(store)

			actual := store.Snapshot()
			assert.Equal(t, then.docPaths, actual.DocPaths)
			assert.Equal(t, then.inputKey, actual.InputKey)
			assert.Equal(t, then.modelId, actual.ModelId)
			assert.Equal(t, then.examplePath, actual.ExamplePath)
			assert.Len(t, actual.Examples, then.examples)
		}
	}

	t.Run("when workflow type is switched, doc paths are cleared", theory(
		func(s *wizard.Store) { s.SetWorkflow(wizard.WorkflowSFT) },
		Then{
			docPaths: nil, inputKey: "", modelId: "gpt-4o",
			examplePath: "examples/seed.json", examples: 1,
		},
	))

	t.Run("when workflow type is chosen for the first time after doc paths, doc paths are cleared", theory(
		func(s *wizard.Store) {
			c := configured()
			c.WorkflowType = wizard.WorkflowNone
			c.ExamplePath = "examples/seed.json"
			s.Reset(c)
			s.SetWorkflow(wizard.WorkflowSFT)
		},
		Then{
			docPaths: nil, inputKey: "", modelId: "gpt-4o",
			examplePath: "examples/seed.json", examples: 1,
		},
	))

	t.Run("when workflow type is switched with new doc paths, the new ones are kept", theory(
		func(s *wizard.Store) {
			s.Update(func(c wizard.JobConfiguration) wizard.JobConfiguration {
				c.WorkflowType = wizard.WorkflowSFT
				c.DocPaths = []wizard.DocPath{wizard.NewDocPath("docs/manual.pdf")}
				return c
			})
		},
		Then{
			docPaths: []wizard.DocPath{{Value: "docs/manual.pdf", Label: "manual.pdf"}},
			modelId:  "gpt-4o", examplePath: "examples/seed.json", examples: 1,
		},
	))

	t.Run("when provider is switched, model id is cleared", theory(
		func(s *wizard.Store) { s.SetProvider("gemini") },
		Then{
			docPaths: []wizard.DocPath{{Value: "data/input.json", Label: "input.json"}},
			inputKey: "Prompt", modelId: "",
			examplePath: "examples/seed.json", examples: 1,
		},
	))

	t.Run("when use case is switched to non-custom, examples and uploaded file are cleared", theory(
		func(s *wizard.Store) { s.SetUseCase("code_generation") },
		Then{
			docPaths: []wizard.DocPath{{Value: "data/input.json", Label: "input.json"}},
			inputKey: "Prompt", modelId: "gpt-4o",
			examplePath: "", examples: 0,
		},
	))

	t.Run("when the same value is written, nothing is cleared", theory(
		func(s *wizard.Store) {
			s.SetWorkflow(wizard.WorkflowCustom)
			s.SetProvider("openai")
			s.SetUseCase("custom")
		},
		Then{
			docPaths: []wizard.DocPath{{Value: "data/input.json", Label: "input.json"}},
			inputKey: "Prompt", modelId: "gpt-4o",
			examplePath: "examples/seed.json", examples: 1,
		},
	))

	t.Run("Reset does not apply clearing rules", theory(
		func(s *wizard.Store) {
			c := configured()
			c.WorkflowType = wizard.WorkflowSFT
			c.ExamplePath = "examples/seed.json"
			s.Reset(c)
		},
		Then{
			docPaths: []wizard.DocPath{{Value: "data/input.json", Label: "input.json"}},
			inputKey: "Prompt", modelId: "gpt-4o",
			examplePath: "examples/seed.json", examples: 1,
		},
	))
}

func TestStore_DatasetSizeIsClearedWithInputs(t *testing.T) {
	initial := configured()
	size := 10
	initial.TotalDatasetSize = &size
	store := wizard.NewStore(initial)

	store.Update(func(c wizard.JobConfiguration) wizard.JobConfiguration {
		c.InputKey = "Question"
		return c
	})
	assert.Nil(t, store.Snapshot().TotalDatasetSize)

	store.Update(func(c wizard.JobConfiguration) wizard.JobConfiguration {
		n := 30
		c.TotalDatasetSize = &n
		return c
	})
	actual := store.Snapshot().TotalDatasetSize
	if assert.NotNil(t, actual) {
		assert.Equal(t, 30, *actual)
	}
}
