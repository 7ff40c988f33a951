// Package cache stores responses of listing queries for a while.
package cache

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrInvalidUrl = errors.New("invalid cache url")

// Store is a key-value store with expiration.
type Store interface {
	// Get returns the value for the key.
	//
	// The second value is false when the key is missing or expired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set puts the value for the key. It expires after ttl.
	//
	// ttl <= 0 means no expiration.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes the keys. Missing keys are ignored.
	Delete(ctx context.Context, keys ...string) error

	// Close releases connections of the store.
	Close() error
}

type entry struct {
	value   []byte
	expires time.Time
}

type memory struct {
	mu      sync.Mutex
	now     func() time.Time
	entries map[string]entry
}

type MemoryOption func(*memory)

// WithClock replaces the clock of the memory store.
func WithClock(now func() time.Time) MemoryOption {
	return func(m *memory) {
		m.now = now
	}
}

// NewMemory returns a Store in the process memory.
func NewMemory(options ...MemoryOption) Store {
	m := &memory{now: time.Now, entries: map[string]entry{}}
	for _, o := range options {
		o(m)
	}
	return m
}

func (m *memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return nil, false, nil
	}
	if !e.expires.IsZero() && !m.now().Before(e.expires) {
		delete(m.entries, key)
		return nil, false, nil
	}
	return append([]byte{}, e.value...), true, nil
}

func (m *memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := entry{value: append([]byte{}, value...)}
	if 0 < ttl {
		e.expires = m.now().Add(ttl)
	}
	m.entries[key] = e
	return nil
}

func (m *memory) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, k := range keys {
		delete(m.entries, k)
	}
	return nil
}

func (m *memory) Close() error {
	return nil
}
