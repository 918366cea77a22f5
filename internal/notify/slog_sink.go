package notify

import (
	"context"
	"log/slog"
)

// SlogSink writes notifications to a structured logger. It is the default
// sink when no interactive surface is attached.
type SlogSink struct {
	logger *slog.Logger
}

// NewSlogSink creates a SlogSink. A nil logger falls back to slog.Default.
func NewSlogSink(logger *slog.Logger) *SlogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogSink{logger: logger}
}

// Deliver implements the Sink interface.
func (s *SlogSink) Deliver(n Notification) {
	level := slog.LevelInfo
	switch n.Kind {
	case KindError:
		level = slog.LevelError
	case KindWarning:
		level = slog.LevelWarn
	}
	s.logger.LogAttrs(context.Background(), level, "notification",
		slog.String("kind", string(n.Kind)),
		slog.String("message", n.Message),
		slog.String("key", n.Key),
	)
}
