// Package service holds the application flows that tie the API surface,
// session store, guard and navigation together.
package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/openshelf/openshelf/internal/domain/auth"
	"github.com/openshelf/openshelf/internal/domain/catalog"
	apperrors "github.com/openshelf/openshelf/internal/errors"
	"github.com/openshelf/openshelf/internal/notify"
	"github.com/openshelf/openshelf/internal/ports"
)

// LoginAPI is the slice of the user API the auth flow needs.
type LoginAPI interface {
	Login(ctx context.Context, creds catalog.LoginRequest) (*auth.AuthResponse, error)
}

// SessionWriter is the slice of the session store the auth flow needs.
type SessionWriter interface {
	Login(ctx context.Context, resp auth.AuthResponse)
	Logout(ctx context.Context)
	CheckTokenExpiry(ctx context.Context) bool
	Snapshot() auth.Session
}

// Auth drives the sign-in/sign-out flows: exchange credentials, populate the
// session, and land the visitor where they were headed.
type Auth struct {
	users     LoginAPI
	sessions  SessionWriter
	navigator ports.Navigator
	notifier  notify.Notifier
	logger    *slog.Logger
	homePath  string
}

type AuthOptions struct {
	Users     LoginAPI
	Sessions  SessionWriter
	Navigator ports.Navigator
	Notifier  notify.Notifier
	Logger    *slog.Logger
	HomePath  string
}

func NewAuth(opts AuthOptions) *Auth {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	homePath := opts.HomePath
	if homePath == "" {
		homePath = "/"
	}
	return &Auth{
		users:     opts.Users,
		sessions:  opts.Sessions,
		navigator: opts.Navigator,
		notifier:  opts.Notifier,
		logger:    logger,
		homePath:  homePath,
	}
}

// SignIn exchanges credentials for a session. On success the visitor is
// sent to returnTo, typically the path a guard redirect preserved; an empty
// returnTo lands on home. The session write completes before navigation.
func (a *Auth) SignIn(ctx context.Context, email, password, returnTo string) error {
	resp, err := a.users.Login(ctx, catalog.LoginRequest{Email: email, Password: password})
	if err != nil {
		a.logger.WarnContext(ctx, "sign-in rejected", "email", email, "error", err)
		notify.Error(a.notifier, "", signInFailureMessage(err))
		return err
	}

	a.sessions.Login(ctx, *resp)
	notify.Success(a.notifier, "", "Signed in successfully")

	target := returnTo
	if target == "" {
		target = a.homePath
	}
	a.navigator.Navigate(target)
	return nil
}

// SignOut clears the session and returns to home.
func (a *Auth) SignOut(ctx context.Context) {
	a.sessions.Logout(ctx)
	a.navigator.Navigate(a.homePath)
}

// Resume runs the startup pass: the store has already rehydrated from
// durable storage, so this only applies the passive expiry check and
// reports what survived.
func (a *Auth) Resume(ctx context.Context) auth.Session {
	a.sessions.CheckTokenExpiry(ctx)
	return a.sessions.Snapshot()
}

// signInFailureMessage prefers the server's own message, falling back to a
// generic credential hint.
func signInFailureMessage(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Message != "" && appErr.Cause == nil {
		return appErr.Message
	}
	return "Sign-in failed, check your email and password"
}
