package filestore

// Package filestore provides a file-backed DurableStorage adapter: a single
// JSON file holding a key/value map, the local analog of browser storage.
// Writes go through a temp file and rename so a crash mid-write never leaves
// a half-written record behind.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	apperrors "github.com/openshelf/openshelf/internal/errors"
	"github.com/openshelf/openshelf/internal/ports"
)

// Storage is a file-backed implementation of ports.DurableStorage.
type Storage struct {
	mu   sync.Mutex
	path string
}

var _ ports.DurableStorage = (*Storage)(nil)

// New creates a Storage persisting to the given file path. The file and its
// parent directory are created lazily on first write.
func New(path string) *Storage {
	return &Storage{path: path}
}

func (s *Storage) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slots, err := s.load()
	if err != nil {
		return nil, err
	}
	value, ok := slots[key]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return append([]byte(nil), value...), nil
}

func (s *Storage) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	slots, err := s.load()
	if err != nil {
		// A file we cannot parse is replaced rather than propagated; the
		// session layer treats unreadable records as absent anyway.
		slots = map[string]json.RawMessage{}
	}
	slots[key] = append([]byte(nil), value...)
	return s.flush(slots)
}

func (s *Storage) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	slots, err := s.load()
	if err != nil {
		slots = map[string]json.RawMessage{}
	}
	if _, ok := slots[key]; !ok {
		return nil
	}
	delete(slots, key)
	return s.flush(slots)
}

// load reads the whole slot map. A missing file is an empty map.
func (s *Storage) load() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]json.RawMessage{}, nil
		}
		return nil, fmt.Errorf("read storage file: %w", err)
	}

	slots := map[string]json.RawMessage{}
	if len(data) == 0 {
		return slots, nil
	}
	if err := json.Unmarshal(data, &slots); err != nil {
		return nil, apperrors.AuthDataCorrupt("parse storage file", err)
	}
	return slots, nil
}

// flush writes the slot map atomically via temp file + rename.
func (s *Storage) flush(slots map[string]json.RawMessage) error {
	data, err := json.Marshal(slots)
	if err != nil {
		return fmt.Errorf("encode storage file: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create storage dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".storage-*")
	if err != nil {
		return fmt.Errorf("create temp storage file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp storage file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp storage file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod storage file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace storage file: %w", err)
	}
	return nil
}
