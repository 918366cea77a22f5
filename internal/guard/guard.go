// Package guard decides whether a navigation attempt may reach a protected
// destination. It only observes session state and never mutates it; redirects
// are expressed as decisions for the caller to act on.
package guard

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/openshelf/openshelf/internal/domain/auth"
	"github.com/openshelf/openshelf/internal/notify"
)

// Action is the outcome of evaluating a protected navigation.
type Action int

const (
	// Allow renders the destination.
	Allow Action = iota
	// RedirectToLogin sends the visitor to the login location with the
	// attempted path preserved for post-login resume.
	RedirectToLogin
	// RedirectToHome sends an authenticated visitor without the required
	// role back to the home location.
	RedirectToHome
)

func (a Action) String() string {
	switch a {
	case Allow:
		return "allow"
	case RedirectToLogin:
		return "redirect_to_login"
	case RedirectToHome:
		return "redirect_to_home"
	default:
		return "unknown"
	}
}

// Decision is what the guard resolved for one attempt. To is populated on
// redirects; From carries the attempted path so the login flow can return
// the visitor there afterwards.
type Decision struct {
	Action Action
	To     string
	From   string
}

// Route describes a protected destination. An empty RequiredRole means any
// authenticated visitor may enter.
type Route struct {
	Path         string
	RequiredRole auth.Role
}

// Attempt is one logical navigation. The ID doubles as the notification
// idempotency key so that re-evaluating the same attempt cannot surface the
// same message twice.
type Attempt struct {
	ID   string
	Path string
}

// NewAttempt mints an attempt with a fresh correlation ID.
func NewAttempt(path string) Attempt {
	return Attempt{ID: uuid.NewString(), Path: path}
}

// SessionReader is the slice of the session store the guard consumes.
type SessionReader interface {
	Snapshot() auth.Session
}

type Guard struct {
	sessions  SessionReader
	notifier  notify.Notifier
	logger    *slog.Logger
	loginPath string
	homePath  string
}

type Options struct {
	Sessions  SessionReader
	Notifier  notify.Notifier
	Logger    *slog.Logger
	LoginPath string
	HomePath  string
}

func New(opts Options) *Guard {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	loginPath := opts.LoginPath
	if loginPath == "" {
		loginPath = "/login"
	}
	homePath := opts.HomePath
	if homePath == "" {
		homePath = "/"
	}
	return &Guard{
		sessions:  opts.Sessions,
		notifier:  opts.Notifier,
		logger:    logger,
		loginPath: loginPath,
		homePath:  homePath,
	}
}

// Check evaluates one navigation attempt against a route. It is safe to call
// more than once for the same attempt; the attempt ID keys the notification
// so only the first evaluation is heard.
func (g *Guard) Check(attempt Attempt, route Route) Decision {
	snap := g.sessions.Snapshot()

	if !snap.IsAuthenticated {
		g.logger.Debug("navigation denied, not signed in",
			slog.String("path", attempt.Path),
			slog.String("attempt_id", attempt.ID))
		notify.Error(g.notifier, attempt.ID, "Please log in first")
		return Decision{Action: RedirectToLogin, To: g.loginPath, From: attempt.Path}
	}

	if route.RequiredRole != "" && !snap.HasRole(route.RequiredRole) {
		g.logger.Debug("navigation denied, role not satisfied",
			slog.String("path", attempt.Path),
			slog.String("required_role", string(route.RequiredRole)),
			slog.String("attempt_id", attempt.ID))
		notify.Error(g.notifier, attempt.ID, "Permission denied")
		return Decision{Action: RedirectToHome, To: g.homePath}
	}

	return Decision{Action: Allow}
}
