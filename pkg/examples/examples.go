package examples

import (
	"context"
	"sync"

	"github.com/opst/synthstudio/api-types/synthesis"
	"github.com/opst/synthstudio/api-types/usecases"
	"github.com/opst/synthstudio/pkg/wizard"
)

// EmptyMessage is shown when there are no examples to show.
const EmptyMessage = "No examples available. Upload a JSON file or restore the defaults of the use case."

// Source is where examples come from.
type Source int

const (
	None Source = iota
	// Regeneration is examples of a dataset being generated again.
	Regeneration
	// Upload is a JSON file in the project.
	Upload
	// Defaults are examples provided for the use case by the backend.
	Defaults
)

func (s Source) String() string {
	switch s {
	case Regeneration:
		return "regeneration"
	case Upload:
		return "upload"
	case Defaults:
		return "defaults"
	default:
		return "none"
	}
}

// Fetcher reads examples from the backend.
type Fetcher interface {
	GetExamples(ctx context.Context, useCase string) ([]synthesis.Record, error)
	GetContent(ctx context.Context, path string) ([]synthesis.Record, error)
}

// Acquisition is the example set chosen for a configuration.
type Acquisition struct {
	Source Source
	Rows   []synthesis.Record
	Shape  wizard.Shape

	// Message is for empty sets. Empty if there are rows.
	Message string
}

// Acquirer decides examples by priority: regeneration, upload, and then use case defaults.
type Acquirer struct {
	fetcher Fetcher

	mu           sync.Mutex
	regeneration []synthesis.Record
}

type Option func(*Acquirer) *Acquirer

// WithRegeneration makes examples of a previous dataset the most prior source.
func WithRegeneration(rows []synthesis.Record) Option {
	return func(a *Acquirer) *Acquirer {
		if rows != nil {
			a.regeneration = append([]synthesis.Record{}, rows...)
		}
		return a
	}
}

func New(f Fetcher, options ...Option) *Acquirer {
	a := &Acquirer{fetcher: f}
	for _, o := range options {
		a = o(a)
	}
	return a
}

// Resolve returns the example set for the configuration.
//
// When fetching fails, it returns an empty set with EmptyMessage and the error.
// It does not retry.
func (a *Acquirer) Resolve(ctx context.Context, c wizard.JobConfiguration) (Acquisition, error) {
	a.mu.Lock()
	regen := a.regeneration
	a.mu.Unlock()

	if regen != nil {
		return acquired(Regeneration, regen, c.WorkflowType), nil
	}

	if c.ExamplePath != "" {
		rows, err := a.fetcher.GetContent(ctx, c.ExamplePath)
		if err != nil {
			return empty(Upload, c.WorkflowType), err
		}
		return acquired(Upload, rows, c.WorkflowType), nil
	}

	return a.defaults(ctx, c)
}

func (a *Acquirer) defaults(ctx context.Context, c wizard.JobConfiguration) (Acquisition, error) {
	if c.UseCase == "" || c.UseCase == usecases.Custom {
		return empty(Defaults, c.WorkflowType), nil
	}
	rows, err := a.fetcher.GetExamples(ctx, c.UseCase)
	if err != nil {
		return empty(Defaults, c.WorkflowType), err
	}
	return acquired(Defaults, rows, c.WorkflowType), nil
}

// Apply resolves examples and writes them into the store.
//
// On failure, the examples in the store are emptied.
func (a *Acquirer) Apply(ctx context.Context, store *wizard.Store) (Acquisition, error) {
	acq, err := a.Resolve(ctx, store.Snapshot().JobConfiguration)
	store.Update(func(c wizard.JobConfiguration) wizard.JobConfiguration {
		c.Examples = acq.Rows
		return c
	})
	return acq, err
}

// RestoreDefaults replaces examples with defaults of the use case,
// and forgets the uploaded file and examples of regeneration.
func (a *Acquirer) RestoreDefaults(ctx context.Context, store *wizard.Store) (Acquisition, error) {
	a.mu.Lock()
	a.regeneration = nil
	a.mu.Unlock()

	current := store.Snapshot().JobConfiguration
	current.ExamplePath = ""
	acq, err := a.defaults(ctx, current)
	store.Update(func(c wizard.JobConfiguration) wizard.JobConfiguration {
		c.ExamplePath = ""
		c.Examples = acq.Rows
		return c
	})
	return acq, err
}

// Follow keeps examples in the store up to date.
//
// When the use case is changed while no file is uploaded and no regeneration examples exist,
// defaults of the new use case are fetched.
// Fetch errors are passed to onError. Call the returned function to stop.
func (a *Acquirer) Follow(ctx context.Context, store *wizard.Store, onError func(error)) func() {
	last := store.Snapshot().UseCase
	var mu sync.Mutex
	return store.Subscribe(func(s wizard.Snapshot) {
		mu.Lock()
		changed := last != s.UseCase
		last = s.UseCase
		mu.Unlock()

		if !changed || s.ExamplePath != "" {
			return
		}
		a.mu.Lock()
		regenerating := a.regeneration != nil
		a.mu.Unlock()
		if regenerating {
			return
		}

		acq, err := a.defaults(ctx, s.JobConfiguration)
		if err != nil && onError != nil {
			onError(err)
		}
		store.Update(func(c wizard.JobConfiguration) wizard.JobConfiguration {
			if c.UseCase != s.UseCase || c.ExamplePath != "" {
				return c
			}
			c.Examples = acq.Rows
			return c
		})
	})
}

func acquired(src Source, rows []synthesis.Record, w wizard.Workflow) Acquisition {
	if len(rows) == 0 {
		return empty(src, w)
	}
	cloned := make([]synthesis.Record, 0, len(rows))
	for _, r := range rows {
		cloned = append(cloned, r.Clone())
	}
	return Acquisition{Source: src, Rows: cloned, Shape: wizard.ShapeOf(cloned, w)}
}

func empty(src Source, w wizard.Workflow) Acquisition {
	return Acquisition{
		Source:  src,
		Rows:    []synthesis.Record{},
		Shape:   wizard.ShapeOf(nil, w),
		Message: EmptyMessage,
	}
}
