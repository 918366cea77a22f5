// Package memstore is an in-process durable storage backend. Nothing
// survives a restart; it backs the "memory" session backend for throwaway
// runs and tests.
package memstore

import (
	"context"
	"sync"

	"github.com/openshelf/openshelf/internal/ports"
)

type Storage struct {
	mu    sync.Mutex
	slots map[string][]byte
}

var _ ports.DurableStorage = (*Storage)(nil)

func New() *Storage {
	return &Storage{slots: make(map[string][]byte)}
}

func (s *Storage) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.slots[key]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return append([]byte(nil), value...), nil
}

func (s *Storage) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[key] = append([]byte(nil), value...)
	return nil
}

func (s *Storage) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.slots, key)
	return nil
}
