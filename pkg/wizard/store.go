package wizard

import (
	"sync"
)

// Snapshot is a state of the store at a write.
//
// A Snapshot is owned by its receiver. Modifying it does not affect the store.
type Snapshot struct {
	// Version increases by each write.
	Version uint64
	JobConfiguration
}

// Listener is called with the snapshot after each write.
type Listener func(Snapshot)

// Store is an observable holder of JobConfiguration.
type Store struct {
	mu        sync.Mutex
	version   uint64
	current   JobConfiguration
	nextId    int
	listeners []subscription
}

type subscription struct {
	id int
	l  Listener
}

// NewStore creates a store holding initial.
func NewStore(initial JobConfiguration) *Store {
	return &Store{current: initial.Clone()}
}

// Snapshot returns the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{Version: s.version, JobConfiguration: s.current.Clone()}
}

// Update writes the configuration returned by f, and notifies listeners.
//
// f receives a copy of the current configuration.
// After f, clearing rules are applied: changing workflow type clears doc paths,
// changing provider clears model id, and changing use case to a non-custom one
// clears examples and uploaded example file.
//
// Listeners are called synchronously on the caller's goroutine in registration order,
// after the store is unlocked. Listeners may Update the store.
func (s *Store) Update(f func(JobConfiguration) JobConfiguration) Snapshot {
	return s.write(func(prev JobConfiguration) JobConfiguration {
		return settle(prev, f(prev.Clone()))
	})
}

// Reset replaces the configuration without clearing rules, and notifies listeners.
func (s *Store) Reset(c JobConfiguration) Snapshot {
	return s.write(func(JobConfiguration) JobConfiguration { return c.Clone() })
}

func (s *Store) write(f func(JobConfiguration) JobConfiguration) Snapshot {
	s.mu.Lock()
	next := f(s.current)
	s.current = next.Clone()
	s.version += 1
	snapshot := Snapshot{Version: s.version, JobConfiguration: s.current}
	listeners := make([]Listener, len(s.listeners))
	for i := range s.listeners {
		listeners[i] = s.listeners[i].l
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(Snapshot{Version: snapshot.Version, JobConfiguration: snapshot.Clone()})
	}
	return Snapshot{Version: snapshot.Version, JobConfiguration: snapshot.Clone()}
}

// Subscribe registers a listener. It returns a function to unsubscribe.
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextId
	s.nextId += 1
	s.listeners = append(s.listeners, subscription{id: id, l: l})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.listeners {
			if sub.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) SetDisplayName(name string) Snapshot {
	return s.Update(func(c JobConfiguration) JobConfiguration {
		c.DisplayName = name
		return c
	})
}

func (s *Store) SetProvider(provider string) Snapshot {
	return s.Update(func(c JobConfiguration) JobConfiguration {
		c.Provider = provider
		return c
	})
}

func (s *Store) SetModelId(modelId string) Snapshot {
	return s.Update(func(c JobConfiguration) JobConfiguration {
		c.ModelId = modelId
		return c
	})
}

func (s *Store) SetWorkflow(w Workflow) Snapshot {
	return s.Update(func(c JobConfiguration) JobConfiguration {
		c.WorkflowType = w
		return c
	})
}

func (s *Store) SetUseCase(useCase string) Snapshot {
	return s.Update(func(c JobConfiguration) JobConfiguration {
		c.UseCase = useCase
		return c
	})
}

func (s *Store) SetDocPaths(paths ...DocPath) Snapshot {
	return s.Update(func(c JobConfiguration) JobConfiguration {
		c.DocPaths = paths
		return c
	})
}
