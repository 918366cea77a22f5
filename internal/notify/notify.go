package notify

// Package notify surfaces security-relevant decisions (login required,
// permission denied, session expired) to the user exactly once per logical
// event. Delivery is fanned out to pluggable sinks; de-duplication happens
// here so callers that get evaluated twice for one decision stay silent the
// second time.

import (
	"sync"
	"time"
)

// Kind classifies a notification for presentation purposes.
type Kind string

const (
	KindError   Kind = "error"
	KindWarning Kind = "warning"
	KindSuccess Kind = "success"
)

// Notification is a single user-facing transient message.
type Notification struct {
	Kind    Kind
	Message string
	// Key is an idempotency key: notifications sharing a non-empty Key are
	// delivered at most once per bridge lifetime. An empty Key is never
	// de-duplicated.
	Key        string
	OccurredAt time.Time
}

// Notifier is the narrow interface consumers (guard, interceptors, session
// store) depend on.
type Notifier interface {
	Notify(n Notification)
}

// Sink describes a destination capable of presenting notifications.
type Sink interface {
	Deliver(n Notification)
}

// SinkFunc adapts a function to the Sink interface (useful for tests).
type SinkFunc func(n Notification)

// Deliver implements the Sink interface.
func (f SinkFunc) Deliver(n Notification) {
	if f == nil {
		return
	}
	f(n)
}

// Bridge fans notifications out to its sinks, dropping repeats that carry an
// idempotency key it has already seen.
type Bridge struct {
	mu    sync.Mutex
	seen  map[string]struct{}
	sinks []Sink
}

// NewBridge creates a Bridge delivering to the given sinks.
func NewBridge(sinks ...Sink) *Bridge {
	return &Bridge{
		seen:  make(map[string]struct{}),
		sinks: sinks,
	}
}

var _ Notifier = (*Bridge)(nil)

// Notify delivers n to every sink unless its Key was already seen.
func (b *Bridge) Notify(n Notification) {
	if n.Key != "" {
		b.mu.Lock()
		if _, dup := b.seen[n.Key]; dup {
			b.mu.Unlock()
			return
		}
		b.seen[n.Key] = struct{}{}
		b.mu.Unlock()
	}

	if n.OccurredAt.IsZero() {
		n.OccurredAt = time.Now()
	}
	for _, s := range b.sinks {
		s.Deliver(n)
	}
}

// Forget clears a previously seen idempotency key, allowing the next
// notification carrying it to be delivered again. Called when the decision
// lifecycle that owned the key is torn down.
func (b *Bridge) Forget(key string) {
	if key == "" {
		return
	}
	b.mu.Lock()
	delete(b.seen, key)
	b.mu.Unlock()
}

// Error is shorthand for an error-kind notification.
func Error(n Notifier, key, message string) {
	n.Notify(Notification{Kind: KindError, Key: key, Message: message})
}

// Warning is shorthand for a warning-kind notification.
func Warning(n Notifier, key, message string) {
	n.Notify(Notification{Kind: KindWarning, Key: key, Message: message})
}

// Success is shorthand for a success-kind notification.
func Success(n Notifier, key, message string) {
	n.Notify(Notification{Kind: KindSuccess, Key: key, Message: message})
}
