package services

import (
	"context"
	"errors"
	"sync"

	"github.com/bobby-s-dev/swimspot/pkg/client"
)

// FetchStatus is the lifecycle of one keyed fetch inside a session
type FetchStatus int

const (
	NotStarted FetchStatus = iota
	InFlight
	Done
	Failed
)

func (s FetchStatus) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case InFlight:
		return "in_flight"
	case Done:
		return "done"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

func (s FetchStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// FetchResult is the observable state of a key. Value is set only when
// Status is Done, Err only when it is Failed.
type FetchResult[T any] struct {
	Status FetchStatus
	Value  T
	Err    error
}

type fetchEntry[T any] struct {
	result FetchResult[T]
	done   chan struct{}
	// abandoned is set when the owner's context ended the fetch
	abandoned bool
}

// FetchTable runs at most one fetch per key. Callers arriving while a fetch
// is in flight wait for it; a Done or Failed key is answered from the table.
type FetchTable[T any] struct {
	mu      sync.Mutex
	entries map[string]*fetchEntry[T]
}

func NewFetchTable[T any]() *FetchTable[T] {
	return &FetchTable[T]{entries: make(map[string]*fetchEntry[T])}
}

// Get returns the value for key, calling fetch only if no fetch for key has
// been started yet. A fetch aborted by its caller's context, or refused by an
// open circuit breaker, is forgotten so that a later Get can try again; any
// other failure is final. A waiter whose own context is still live takes over
// a fetch its owner abandoned.
func (t *FetchTable[T]) Get(ctx context.Context, key string, fetch func(context.Context) (T, error)) (T, error) {
	for {
		t.mu.Lock()
		entry, ok := t.entries[key]
		if !ok {
			entry = &fetchEntry[T]{
				result: FetchResult[T]{Status: InFlight},
				done:   make(chan struct{}),
			}
			t.entries[key] = entry
			t.mu.Unlock()

			return t.run(ctx, key, entry, fetch)
		}
		t.mu.Unlock()

		select {
		case <-entry.done:
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		}

		t.mu.Lock()
		result, abandoned := entry.result, entry.abandoned
		t.mu.Unlock()

		if abandoned && ctx.Err() == nil {
			continue
		}
		return result.Value, result.Err
	}
}

func (t *FetchTable[T]) run(ctx context.Context, key string, entry *fetchEntry[T], fetch func(context.Context) (T, error)) (T, error) {
	value, err := fetch(ctx)

	t.mu.Lock()
	defer t.mu.Unlock()

	switch {
	case err == nil:
		entry.result = FetchResult[T]{Status: Done, Value: value}
	case isCancellation(ctx, err):
		entry.result = FetchResult[T]{Status: NotStarted, Err: err}
		entry.abandoned = true
		delete(t.entries, key)
	case client.IsTransient(err):
		entry.result = FetchResult[T]{Status: NotStarted, Err: err}
		delete(t.entries, key)
	default:
		entry.result = FetchResult[T]{Status: Failed, Err: err}
	}
	close(entry.done)

	return value, err
}

// Status reports the current state of key without triggering a fetch.
func (t *FetchTable[T]) Status(key string) FetchResult[T] {
	t.mu.Lock()
	defer t.mu.Unlock()

	entry, ok := t.entries[key]
	if !ok {
		return FetchResult[T]{Status: NotStarted}
	}
	return entry.result
}

// Snapshot returns the status of every key that has been requested.
func (t *FetchTable[T]) Snapshot() map[string]FetchStatus {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make(map[string]FetchStatus, len(t.entries))
	for key, entry := range t.entries {
		out[key] = entry.result.Status
	}
	return out
}

// Counts tallies keys per status.
func (t *FetchTable[T]) Counts() map[FetchStatus]int {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make(map[FetchStatus]int, 3)
	for _, entry := range t.entries {
		out[entry.result.Status]++
	}
	return out
}

func isCancellation(ctx context.Context, err error) bool {
	if ctx.Err() == nil {
		return false
	}
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
