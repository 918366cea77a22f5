package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openshelf/openshelf/internal/domain/auth"
	"github.com/openshelf/openshelf/internal/mocks"
)

const testKey = "auth-storage"

func newTestStore(t *testing.T, storage *mocks.MemoryStorage, opts ...func(*Options)) (*Store, *mocks.RecordingNotifier) {
	t.Helper()
	notifier := mocks.NewRecordingNotifier()
	o := Options{
		Storage:    storage,
		StorageKey: testKey,
		Notifier:   notifier,
	}
	for _, apply := range opts {
		apply(&o)
	}
	return NewStore(context.Background(), o), notifier
}

func adminResponse(expiresAt time.Time) auth.AuthResponse {
	return auth.AuthResponse{
		Token:     "abc",
		Name:      "Alice",
		Role:      auth.RoleAdmin,
		ExpiresAt: expiresAt,
	}
}

func TestFreshStoreIsUnauthenticated(t *testing.T) {
	store, notifier := newTestStore(t, mocks.NewMemoryStorage())

	snap := store.Snapshot()
	assert.False(t, snap.IsAuthenticated)
	assert.Empty(t, snap.Token)
	assert.Nil(t, snap.User)
	assert.True(t, snap.Consistent())
	assert.Zero(t, notifier.Count())
}

func TestLoginSetsAndPersistsState(t *testing.T) {
	storage := mocks.NewMemoryStorage()
	store, _ := newTestStore(t, storage)
	ctx := context.Background()

	expiry := time.Now().Add(time.Hour).Truncate(time.Second).UTC()
	store.Login(ctx, adminResponse(expiry))

	snap := store.Snapshot()
	assert.True(t, snap.IsAuthenticated)
	assert.Equal(t, "abc", snap.Token)
	require.NotNil(t, snap.User)
	assert.Equal(t, "Alice", snap.User.Name)
	assert.True(t, snap.Consistent())
	assert.True(t, store.IsAdmin())
	assert.False(t, store.IsUser())

	// Write-through: the durable record reflects the new state immediately.
	require.True(t, storage.Has(testKey))
}

func TestLoginToleratesMissingFields(t *testing.T) {
	store, _ := newTestStore(t, mocks.NewMemoryStorage())

	store.Login(context.Background(), auth.AuthResponse{})

	snap := store.Snapshot()
	assert.True(t, snap.IsAuthenticated)
	assert.Empty(t, snap.Token)
	require.NotNil(t, snap.User)
	assert.Empty(t, snap.User.Name)
	assert.Empty(t, snap.User.Role)
	assert.True(t, snap.User.ExpiresAt.IsZero())
	assert.True(t, snap.Consistent())
}

func TestRoundTripPersistence(t *testing.T) {
	storage := mocks.NewMemoryStorage()
	store, _ := newTestStore(t, storage)
	expiry := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	store.Login(context.Background(), adminResponse(expiry))
	want := store.Snapshot()

	// A fresh store over the same storage rehydrates identical state.
	rehydrated, notifier := newTestStore(t, storage)
	got := rehydrated.Snapshot()

	assert.Equal(t, want.Token, got.Token)
	assert.Equal(t, want.IsAuthenticated, got.IsAuthenticated)
	require.NotNil(t, got.User)
	assert.Equal(t, want.User.Name, got.User.Name)
	assert.Equal(t, want.User.Role, got.User.Role)
	assert.True(t, want.User.ExpiresAt.Equal(got.User.ExpiresAt))
	assert.True(t, rehydrated.IsAdmin())
	assert.Zero(t, notifier.Count())
}

func TestLogoutClearsStateAndRecord(t *testing.T) {
	storage := mocks.NewMemoryStorage()
	store, _ := newTestStore(t, storage)
	ctx := context.Background()
	store.Login(ctx, adminResponse(time.Now().Add(time.Hour)))

	store.Logout(ctx)

	snap := store.Snapshot()
	assert.False(t, snap.IsAuthenticated)
	assert.Empty(t, snap.Token)
	assert.Nil(t, snap.User)
	assert.True(t, snap.Consistent())
	assert.False(t, storage.Has(testKey))
}

func TestLogoutIsIdempotent(t *testing.T) {
	storage := mocks.NewMemoryStorage()
	store, _ := newTestStore(t, storage)
	ctx := context.Background()
	store.Login(ctx, adminResponse(time.Now().Add(time.Hour)))

	var changes int
	cancel := store.Subscribe(func(auth.Session) { changes++ })
	defer cancel()

	store.Logout(ctx)
	store.Logout(ctx)

	assert.Equal(t, 1, changes, "second logout must be a no-op")
	assert.False(t, store.Snapshot().IsAuthenticated)
}

func TestCheckTokenExpiryNoUserOrNoExpiry(t *testing.T) {
	store, _ := newTestStore(t, mocks.NewMemoryStorage())
	ctx := context.Background()

	// No user at all.
	assert.False(t, store.CheckTokenExpiry(ctx))

	// Authenticated but the server never supplied an expiry: false forever,
	// without logging the session out.
	store.Login(ctx, auth.AuthResponse{Token: "abc", Name: "Alice", Role: auth.RoleMember})
	assert.False(t, store.CheckTokenExpiry(ctx))
	assert.True(t, store.Snapshot().IsAuthenticated)
}

func TestCheckTokenExpiryFutureExpiry(t *testing.T) {
	store, _ := newTestStore(t, mocks.NewMemoryStorage())
	ctx := context.Background()
	store.Login(ctx, adminResponse(time.Now().Add(time.Hour)))

	assert.True(t, store.CheckTokenExpiry(ctx))
	assert.True(t, store.Snapshot().IsAuthenticated)
}

func TestCheckTokenExpiryPastExpiryLogsOut(t *testing.T) {
	storage := mocks.NewMemoryStorage()
	store, _ := newTestStore(t, storage)
	ctx := context.Background()
	store.Login(ctx, adminResponse(time.Now().Add(-5*time.Minute)))

	assert.False(t, store.CheckTokenExpiry(ctx))

	snap := store.Snapshot()
	assert.False(t, snap.IsAuthenticated)
	assert.Nil(t, snap.User)
	assert.False(t, storage.Has(testKey))

	// One-way: without an intervening login, it stays false.
	assert.False(t, store.CheckTokenExpiry(ctx))
}

func TestCheckTokenExpiryBoundaryIsExpired(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	store, _ := newTestStore(t, mocks.NewMemoryStorage(), func(o *Options) {
		o.Now = func() time.Time { return now }
	})
	ctx := context.Background()

	// now == expiresAt counts as expired.
	store.Login(ctx, adminResponse(now))
	assert.False(t, store.CheckTokenExpiry(ctx))
	assert.False(t, store.Snapshot().IsAuthenticated)
}

func TestHydrateCorruptRecord(t *testing.T) {
	storage := mocks.NewMemoryStorage()
	storage.Seed(testKey, []byte(`{not json`))

	store, notifier := newTestStore(t, storage)

	snap := store.Snapshot()
	assert.False(t, snap.IsAuthenticated)
	assert.True(t, snap.Consistent())
	assert.Equal(t, 1, notifier.Count(), "corrupt record surfaces exactly one notification")
}

func TestHydrateInconsistentRecordTreatedAsAbsent(t *testing.T) {
	storage := mocks.NewMemoryStorage()
	// Valid JSON, but the flag disagrees with the user pointer.
	storage.Seed(testKey, []byte(`{"state":{"token":"abc","user":null,"isAuthenticated":true},"version":0}`))

	store, notifier := newTestStore(t, storage)

	assert.False(t, store.Snapshot().IsAuthenticated)
	assert.Equal(t, 1, notifier.Count())
}

func TestSubscribeObservesChanges(t *testing.T) {
	store, _ := newTestStore(t, mocks.NewMemoryStorage())
	ctx := context.Background()

	var seen []bool
	cancel := store.Subscribe(func(s auth.Session) { seen = append(seen, s.IsAuthenticated) })

	store.Login(ctx, adminResponse(time.Now().Add(time.Hour)))
	store.Logout(ctx)
	cancel()
	store.Login(ctx, adminResponse(time.Now().Add(time.Hour)))

	assert.Equal(t, []bool{true, false}, seen)
}

func TestPersistFailureKeepsMemoryState(t *testing.T) {
	storage := mocks.NewMemoryStorage()
	storage.SetErr = assert.AnError
	store, _ := newTestStore(t, storage)

	store.Login(context.Background(), adminResponse(time.Now().Add(time.Hour)))

	// Login never fails the caller; the in-memory session is still set.
	assert.True(t, store.Snapshot().IsAuthenticated)
}
