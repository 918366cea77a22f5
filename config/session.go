package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// StorageBackend selects the durable storage adapter backing the session.
type StorageBackend string

const (
	// StorageBackendFile persists the session record to a local JSON file.
	StorageBackendFile StorageBackend = "file"
	// StorageBackendRedis persists the session record to Redis.
	StorageBackendRedis StorageBackend = "redis"
	// StorageBackendMemory keeps the session record in process memory only
	// (no reload survival; intended for tests and throwaway runs).
	StorageBackendMemory StorageBackend = "memory"
)

// UnmarshalText implements encoding.TextUnmarshaler for StorageBackend.
func (b *StorageBackend) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "file", "redis", "memory":
		*b = StorageBackend(v)
		return nil
	default:
		return fmt.Errorf("invalid StorageBackend: %q (valid options: file, redis, memory)", v)
	}
}

// SessionConfig groups session persistence configuration.
type SessionConfig struct {
	// Backend determines which durable storage adapter holds the session.
	Backend StorageBackend `env:"SESSION_BACKEND" envDefault:"file"`

	// StorageKey is the name of the single durable slot holding the
	// persisted session snapshot.
	StorageKey string `env:"SESSION_STORAGE_KEY" envDefault:"auth-storage"`

	// FilePath is where the file backend keeps the session record.
	// Defaults to a per-user location under the home directory.
	FilePath string `env:"SESSION_FILE" envDefault:""`
}

// Sanitize applies guardrails and resolves defaults that depend on the
// runtime environment.
func (s *SessionConfig) Sanitize() {
	if s.Backend == "" {
		s.Backend = StorageBackendFile
	}
	s.StorageKey = strings.TrimSpace(s.StorageKey)
	if s.StorageKey == "" {
		s.StorageKey = "auth-storage"
	}
	if s.FilePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		s.FilePath = filepath.Join(home, ".openshelf", "session.json")
	}
}
