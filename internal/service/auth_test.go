package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openshelf/openshelf/internal/domain/auth"
	"github.com/openshelf/openshelf/internal/domain/catalog"
	apperrors "github.com/openshelf/openshelf/internal/errors"
	"github.com/openshelf/openshelf/internal/mocks"
	"github.com/openshelf/openshelf/internal/notify"
	"github.com/openshelf/openshelf/internal/session"
)

type stubLoginAPI struct {
	resp  *auth.AuthResponse
	err   error
	creds catalog.LoginRequest
}

func (s *stubLoginAPI) Login(_ context.Context, creds catalog.LoginRequest) (*auth.AuthResponse, error) {
	s.creds = creds
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

type authFixture struct {
	auth      *Auth
	sessions  *session.Store
	storage   *mocks.MemoryStorage
	notifier  *mocks.RecordingNotifier
	navigator *mocks.RecordingNavigator
}

func newAuthFixture(t *testing.T, users LoginAPI) *authFixture {
	t.Helper()
	f := &authFixture{
		storage:   mocks.NewMemoryStorage(),
		notifier:  mocks.NewRecordingNotifier(),
		navigator: mocks.NewRecordingNavigator(),
	}
	f.sessions = session.NewStore(context.Background(), session.Options{
		Storage:    f.storage,
		StorageKey: "auth-storage",
		Notifier:   f.notifier,
	})
	f.auth = NewAuth(AuthOptions{
		Users:     users,
		Sessions:  f.sessions,
		Navigator: f.navigator,
		Notifier:  f.notifier,
	})
	return f
}

func TestSignInPopulatesSessionAndResumesReturnPath(t *testing.T) {
	users := &stubLoginAPI{resp: &auth.AuthResponse{
		Token:     "abc",
		Name:      "Alice",
		Role:      auth.RoleAdmin,
		ExpiresAt: time.Now().Add(time.Hour),
	}}
	f := newAuthFixture(t, users)

	err := f.auth.SignIn(context.Background(), "alice@example.com", "secret", "/admin")

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", users.creds.Email)

	snap := f.sessions.Snapshot()
	assert.True(t, snap.IsAuthenticated)
	assert.True(t, snap.IsAdmin())
	assert.True(t, f.storage.Has("auth-storage"), "session persisted before navigation")
	assert.Equal(t, []string{"/admin"}, f.navigator.SoftNavigations())
}

func TestSignInDefaultsToHome(t *testing.T) {
	users := &stubLoginAPI{resp: &auth.AuthResponse{Token: "abc", Name: "Bob", Role: auth.RoleMember}}
	f := newAuthFixture(t, users)

	require.NoError(t, f.auth.SignIn(context.Background(), "bob@example.com", "pw", ""))
	assert.Equal(t, []string{"/"}, f.navigator.SoftNavigations())
}

func TestSignInFailureSurfacesServerMessage(t *testing.T) {
	users := &stubLoginAPI{err: apperrors.Unauthorized("invalid email or password")}
	f := newAuthFixture(t, users)

	err := f.auth.SignIn(context.Background(), "alice@example.com", "wrong", "")

	require.Error(t, err)
	assert.False(t, f.sessions.Snapshot().IsAuthenticated)
	assert.Empty(t, f.navigator.SoftNavigations())

	var sawFailure bool
	for _, n := range f.notifier.Notifications() {
		if n.Kind == notify.KindError && n.Message == "invalid email or password" {
			sawFailure = true
		}
	}
	assert.True(t, sawFailure)
}

func TestSignInFailureFallsBackToGenericMessage(t *testing.T) {
	users := &stubLoginAPI{err: apperrors.Internal("Request failed", context.DeadlineExceeded)}
	f := newAuthFixture(t, users)

	require.Error(t, f.auth.SignIn(context.Background(), "alice@example.com", "pw", ""))

	messages := make([]string, 0)
	for _, n := range f.notifier.Notifications() {
		messages = append(messages, n.Message)
	}
	assert.Contains(t, messages, "Sign-in failed, check your email and password")
}

func TestSignOutClearsSessionAndGoesHome(t *testing.T) {
	users := &stubLoginAPI{resp: &auth.AuthResponse{Token: "abc", Name: "Alice", Role: auth.RoleMember}}
	f := newAuthFixture(t, users)
	require.NoError(t, f.auth.SignIn(context.Background(), "alice@example.com", "pw", "/profile"))

	f.auth.SignOut(context.Background())

	assert.False(t, f.sessions.Snapshot().IsAuthenticated)
	assert.False(t, f.storage.Has("auth-storage"))
	assert.Equal(t, []string{"/profile", "/"}, f.navigator.SoftNavigations())
}

func TestResumeLogsOutExpiredSession(t *testing.T) {
	users := &stubLoginAPI{resp: &auth.AuthResponse{
		Token:     "abc",
		Name:      "Alice",
		Role:      auth.RoleMember,
		ExpiresAt: time.Now().Add(-5 * time.Minute),
	}}
	f := newAuthFixture(t, users)
	require.NoError(t, f.auth.SignIn(context.Background(), "alice@example.com", "pw", ""))

	snap := f.auth.Resume(context.Background())

	assert.False(t, snap.IsAuthenticated)
	assert.False(t, f.storage.Has("auth-storage"))
}

func TestResumeKeepsLiveSession(t *testing.T) {
	users := &stubLoginAPI{resp: &auth.AuthResponse{
		Token:     "abc",
		Name:      "Alice",
		Role:      auth.RoleAdmin,
		ExpiresAt: time.Now().Add(time.Hour),
	}}
	f := newAuthFixture(t, users)
	require.NoError(t, f.auth.SignIn(context.Background(), "alice@example.com", "pw", ""))

	snap := f.auth.Resume(context.Background())

	assert.True(t, snap.IsAuthenticated)
	assert.Equal(t, "abc", snap.Token)
}
