package ports

// Package ports defines interfaces (hexagonal ports) for the client core.
// Implementations live in internal/adapters; orchestration in internal/session
// and internal/service.

import (
	"context"
	"errors"
)

// ErrNotFound is returned by DurableStorage.Get when the key is absent.
var ErrNotFound = errors.New("storage key not found")

// DurableStorage is the single named-slot storage the session persists to.
// It survives process restarts (the browser-localStorage analog) and is the
// one shared mutable resource across concurrently running clients.
type DurableStorage interface {
	// Get returns the raw value for key, or ErrNotFound when absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set writes the value for key. The write must be durable before Set
	// returns; the session store relies on write-through semantics.
	Set(ctx context.Context, key string, value []byte) error

	// Remove deletes the key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}
