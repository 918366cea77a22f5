package session

// Package session is the single source of truth for "who is logged in and
// with what token". State changes write through to durable storage before
// they are considered complete, so a restart immediately after login
// rehydrates as authenticated.

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/openshelf/openshelf/internal/domain/auth"
	apperrors "github.com/openshelf/openshelf/internal/errors"
	"github.com/openshelf/openshelf/internal/notify"
	"github.com/openshelf/openshelf/internal/ports"
)

// Options groups dependencies for NewStore.
type Options struct {
	Storage    ports.DurableStorage
	StorageKey string
	Notifier   notify.Notifier
	Logger     *slog.Logger

	// Now overrides the clock, for expiry tests. Defaults to time.Now.
	Now func() time.Time
}

// Store holds the current session and persists every mutation.
// All operations are safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	current auth.Session
	subs    map[int]func(auth.Session)
	nextSub int

	storage  ports.DurableStorage
	key      string
	notifier notify.Notifier
	logger   *slog.Logger
	now      func() time.Time
}

// NewStore constructs a Store and rehydrates it from durable storage.
// A missing record yields the unauthenticated default. A corrupt record is
// reported once through the notifier, logged, and treated as absent; no
// error reaches the caller.
func NewStore(ctx context.Context, opts Options) *Store {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	s := &Store{
		subs:     make(map[int]func(auth.Session)),
		storage:  opts.Storage,
		key:      opts.StorageKey,
		notifier: opts.Notifier,
		logger:   logger,
		now:      now,
	}
	s.hydrate(ctx)
	return s
}

func (s *Store) hydrate(ctx context.Context) {
	data, err := s.storage.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return
		}
		if apperrors.IsCode(err, apperrors.ErrCodeAuthDataCorrupt) {
			s.logger.WarnContext(ctx, "session hydrate: corrupt storage, starting unauthenticated", "error", err)
			if s.notifier != nil {
				notify.Error(s.notifier, "", "Stored sign-in data could not be read")
			}
			return
		}
		s.logger.WarnContext(ctx, "session hydrate: storage read failed", "error", err)
		return
	}

	sess, err := DecodeRecord(data)
	if err != nil {
		s.logger.WarnContext(ctx, "session hydrate: corrupt record, starting unauthenticated", "error", err)
		if s.notifier != nil {
			notify.Error(s.notifier, "", "Stored sign-in data could not be read")
		}
		return
	}
	s.current = sess
}

// Login populates the session from a login response and persists it.
// Absent fields in the response are tolerated: name and role coerce to the
// empty string, a missing expiry leaves the session without passive expiry.
func (s *Store) Login(ctx context.Context, resp auth.AuthResponse) {
	s.mu.Lock()
	s.current = auth.Session{
		Token: resp.Token,
		User: &auth.User{
			Name:      resp.Name,
			Role:      resp.Role,
			ExpiresAt: resp.ExpiresAt,
		},
		IsAuthenticated: true,
	}
	snapshot := s.current
	s.persistLocked(ctx)
	subs := s.subscribersLocked()
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}

// Logout clears the session and removes the durable record. Calling it on an
// already-empty session is a no-op.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	if s.current == (auth.Session{}) {
		s.mu.Unlock()
		return
	}
	s.current = auth.Empty()
	if err := s.storage.Remove(ctx, s.key); err != nil {
		s.logger.ErrorContext(ctx, "session logout: remove record failed", "error", err)
	}
	subs := s.subscribersLocked()
	s.mu.Unlock()

	for _, fn := range subs {
		fn(auth.Empty())
	}
}

// CheckTokenExpiry reports whether the session still holds an unexpired
// token. Sessions without a user or without an expiry return false without
// side effects. An expired session is logged out before returning false;
// this is the only time-driven transition out of the authenticated state.
func (s *Store) CheckTokenExpiry(ctx context.Context) bool {
	s.mu.Lock()
	user := s.current.User
	if user == nil || user.ExpiresAt.IsZero() {
		s.mu.Unlock()
		return false
	}
	expired := !s.now().Before(user.ExpiresAt)
	s.mu.Unlock()

	if expired {
		s.Logout(ctx)
		return false
	}
	return true
}

// IsAdmin returns true iff authenticated with the Admin role.
func (s *Store) IsAdmin() bool {
	return s.Snapshot().IsAdmin()
}

// IsUser returns true iff authenticated with the Member role.
func (s *Store) IsUser() bool {
	return s.Snapshot().IsMember()
}

// Snapshot returns a copy of the current session.
func (s *Store) Snapshot() auth.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := s.current
	if snap.User != nil {
		user := *snap.User
		snap.User = &user
	}
	return snap
}

// Subscribe registers an observer invoked after every state change with the
// new session. The returned cancel function removes the subscription.
func (s *Store) Subscribe(fn func(auth.Session)) (cancel func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// persistLocked writes the current state through to durable storage.
// Persistence failure is logged but does not fail the mutation; the
// in-memory state remains authoritative for this process.
func (s *Store) persistLocked(ctx context.Context) {
	data, err := EncodeRecord(s.current)
	if err != nil {
		s.logger.ErrorContext(ctx, "session persist: encode failed", "error", err)
		return
	}
	if err := s.storage.Set(ctx, s.key, data); err != nil {
		s.logger.ErrorContext(ctx, "session persist: write failed", "error", err)
	}
}

func (s *Store) subscribersLocked() []func(auth.Session) {
	out := make([]func(auth.Session), 0, len(s.subs))
	for _, fn := range s.subs {
		out = append(out, fn)
	}
	return out
}
