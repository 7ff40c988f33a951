package wizard

import (
	"errors"
	"fmt"
	"sync"
)

var ErrStepNotReached = errors.New("step is not reached yet")
var ErrNoMoreStep = errors.New("no more step")

// Step is a page of the wizard.
type Step int

const (
	Configure Step = iota
	Examples
	Prompt
	Summary
	Finish
)

// Steps lists steps in order.
var Steps = []Step{Configure, Examples, Prompt, Summary, Finish}

func (s Step) String() string {
	switch s {
	case Configure:
		return "Configure"
	case Examples:
		return "Examples"
	case Prompt:
		return "Prompt"
	case Summary:
		return "Summary"
	case Finish:
		return "Finish"
	default:
		return fmt.Sprintf("Step(%d)", int(s))
	}
}

// Wizard walks steps over a Store.
type Wizard struct {
	store *Store

	mu      sync.Mutex
	current Step
	reached Step
}

// New creates a wizard at Configure step.
func New(store *Store) *Wizard {
	return &Wizard{store: store, current: Configure, reached: Configure}
}

func (w *Wizard) Store() *Store {
	return w.store
}

// Current returns the step the wizard is at.
func (w *Wizard) Current() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current
}

// Reached returns the furthest step the wizard has been at.
func (w *Wizard) Reached() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.reached
}

// CanAdvance reports whether Next succeeds now.
func (w *Wizard) CanAdvance() bool {
	w.mu.Lock()
	current := w.current
	w.mu.Unlock()
	return current < Finish && SelectCanAdvance(w.store.Snapshot().JobConfiguration, current)
}

// Next moves to the next step.
//
// It returns ErrStepIncomplete (as *GateError) when the gate of the current step is closed,
// or ErrNoMoreStep at Finish.
func (w *Wizard) Next() (Step, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.current == Finish {
		return w.current, ErrNoMoreStep
	}
	c := w.store.Snapshot().JobConfiguration
	if err := CheckUntil(w.current+1, c); err != nil {
		return w.current, err
	}
	w.current += 1
	if w.reached < w.current {
		w.reached = w.current
	}
	return w.current, nil
}

// Prev moves to the previous step. At Configure, it stays.
func (w *Wizard) Prev() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	if Configure < w.current {
		w.current -= 1
	}
	return w.current
}

// JumpTo moves to a step reached before.
//
// Moving forward needs all gates before the step opened.
func (w *Wizard) JumpTo(step Step) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if step < Configure || w.reached < step {
		return fmt.Errorf("%w: %s", ErrStepNotReached, step)
	}
	if w.current < step {
		if err := CheckUntil(step, w.store.Snapshot().JobConfiguration); err != nil {
			return err
		}
	}
	w.current = step
	return nil
}
