package mocks

// Package mocks contains simple hand-written test doubles for the core
// ports. These are lightweight and suitable for unit tests without codegen;
// generated gomock mocks for the same interfaces live alongside them.

import (
	"context"
	"sync"

	"github.com/openshelf/openshelf/internal/notify"
	"github.com/openshelf/openshelf/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.DurableStorage = (*MemoryStorage)(nil)
	_ ports.Navigator      = (*RecordingNavigator)(nil)
	_ notify.Notifier      = (*RecordingNotifier)(nil)
)

// MemoryStorage is an in-memory DurableStorage double.
type MemoryStorage struct {
	mu   sync.Mutex
	data map[string][]byte

	// Optional error injection.
	GetErr    error
	SetErr    error
	RemoveErr error
}

// NewMemoryStorage creates an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: make(map[string][]byte)}
}

// Seed pre-populates a key, for tests that start from an existing record.
func (m *MemoryStorage) Seed(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
}

func (m *MemoryStorage) Get(_ context.Context, key string) ([]byte, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.data[key]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return append([]byte(nil), value...), nil
}

func (m *MemoryStorage) Set(_ context.Context, key string, value []byte) error {
	if m.SetErr != nil {
		return m.SetErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *MemoryStorage) Remove(_ context.Context, key string) error {
	if m.RemoveErr != nil {
		return m.RemoveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Has reports whether the key currently exists.
func (m *MemoryStorage) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	return ok
}

// RecordingNotifier captures every notification it receives.
type RecordingNotifier struct {
	mu            sync.Mutex
	notifications []notify.Notification
}

// NewRecordingNotifier creates an empty RecordingNotifier.
func NewRecordingNotifier() *RecordingNotifier {
	return &RecordingNotifier{}
}

func (r *RecordingNotifier) Notify(n notify.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, n)
}

// Deliver lets a RecordingNotifier double as a bridge sink.
func (r *RecordingNotifier) Deliver(n notify.Notification) {
	r.Notify(n)
}

// Notifications returns a copy of everything recorded so far.
func (r *RecordingNotifier) Notifications() []notify.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]notify.Notification(nil), r.notifications...)
}

// Count returns how many notifications were recorded.
func (r *RecordingNotifier) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.notifications)
}

// RecordingNavigator captures navigation calls.
type RecordingNavigator struct {
	mu      sync.Mutex
	soft    []string
	hard    []string
	current string
}

// NewRecordingNavigator creates an empty RecordingNavigator.
func NewRecordingNavigator() *RecordingNavigator {
	return &RecordingNavigator{}
}

func (r *RecordingNavigator) Navigate(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.soft = append(r.soft, path)
	r.current = path
}

func (r *RecordingNavigator) Assign(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hard = append(r.hard, path)
	r.current = path
}

// Current returns the most recently navigated-to path.
func (r *RecordingNavigator) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// SoftNavigations returns the soft transitions recorded so far.
func (r *RecordingNavigator) SoftNavigations() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.soft...)
}

// HardNavigations returns the hard (full reload) navigations recorded so far.
func (r *RecordingNavigator) HardNavigations() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.hard...)
}
