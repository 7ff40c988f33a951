package listing

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval is the interval of refetching listing pages.
const DefaultInterval = 15 * time.Second

// Fetch gets all records of a listing.
type Fetch[T any] func(context.Context) ([]T, error)

// Filter selects records passed to a listener.
type Filter[T any] func(T) bool

// Anything passes all records.
func Anything[T any]() Filter[T] {
	return func(T) bool { return true }
}

// Poller fetches a listing periodically and notifies listeners.
type Poller[T any] struct {
	fetch    Fetch[T]
	interval time.Duration
	onError  func(error) error

	mu        sync.Mutex
	listeners []struct {
		f        Filter[T]
		callback func([]T) error
	}
}

type PollerOption[T any] func(*Poller[T])

// WithInterval changes the interval. Non-positive value means DefaultInterval.
func WithInterval[T any](d time.Duration) PollerOption[T] {
	return func(p *Poller[T]) {
		if 0 < d {
			p.interval = d
		}
	}
}

// WithErrorHandler sets the handler of fetch errors.
//
// When the handler returns nil, polling goes on.
// By default, a fetch error stops polling.
func WithErrorHandler[T any](h func(error) error) PollerOption[T] {
	return func(p *Poller[T]) {
		p.onError = h
	}
}

func NewPoller[T any](fetch Fetch[T], options ...PollerOption[T]) *Poller[T] {
	p := &Poller[T]{
		fetch:    fetch,
		interval: DefaultInterval,
		onError:  func(err error) error { return err },
	}
	for _, o := range options {
		o(p)
	}
	return p
}

// Subscribe registers a callback receiving records passing the filter.
//
// When the callback returns an error, polling stops with it.
func (p *Poller[T]) Subscribe(filter Filter[T], callback func([]T) error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listeners = append(p.listeners, struct {
		f        Filter[T]
		callback func([]T) error
	}{f: filter, callback: callback})
}

// Refresh fetches once and notifies listeners.
//
// Start calls it on every tick. Call it to fetch without waiting for the next tick.
func (p *Poller[T]) Refresh(ctx context.Context) error {
	records, err := p.fetch(ctx)
	if err != nil {
		return p.onError(err)
	}

	p.mu.Lock()
	listeners := p.listeners
	p.mu.Unlock()

	for _, l := range listeners {
		selected := make([]T, 0, len(records))
		for _, r := range records {
			if l.f(r) {
				selected = append(selected, r)
			}
		}
		if err := l.callback(selected); err != nil {
			return err
		}
	}
	return nil
}

// Start fetches immediately, and then every interval until ctx is done.
//
// # Returns
//
// - error: ctx.Err() when ctx is done, or an error stopping polling.
func (p *Poller[T]) Start(ctx context.Context) error {
	if err := p.Refresh(ctx); err != nil {
		return err
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		if err := p.Refresh(ctx); err != nil {
			return err
		}
	}
}
