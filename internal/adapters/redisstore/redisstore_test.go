package redisstore

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openshelf/openshelf/internal/ports"
	"github.com/openshelf/openshelf/internal/testutil"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	client := testutil.SetupTestRedis(t)
	// Unique prefix per test so parallel runs don't collide.
	return NewWithPrefix(client, "openshelf-test:"+uuid.NewString()+":")
}

func TestSetAndGet(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "auth-storage", []byte(`{"state":{}}`)))

	got, err := s.Get(ctx, "auth-storage")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"state":{}}`), got)
}

func TestGetMissingKey(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestRemove(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte(`1`)))
	require.NoError(t, s.Remove(ctx, "k"))

	_, err := s.Get(ctx, "k")
	assert.ErrorIs(t, err, ports.ErrNotFound)

	// Removing an absent key is not an error.
	require.NoError(t, s.Remove(ctx, "k"))
}

func TestOverwrite(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte(`1`)))
	require.NoError(t, s.Set(ctx, "k", []byte(`2`)))

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`2`), got)
}
