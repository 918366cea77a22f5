package memstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openshelf/openshelf/internal/ports"
)

func TestRoundTrip(t *testing.T) {
	storage := New()
	ctx := context.Background()

	_, err := storage.Get(ctx, "auth-storage")
	assert.ErrorIs(t, err, ports.ErrNotFound)

	require.NoError(t, storage.Set(ctx, "auth-storage", []byte(`{"state":{}}`)))
	value, err := storage.Get(ctx, "auth-storage")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"state":{}}`), value)

	require.NoError(t, storage.Remove(ctx, "auth-storage"))
	_, err = storage.Get(ctx, "auth-storage")
	assert.ErrorIs(t, err, ports.ErrNotFound)

	// Removing an absent key is not an error.
	require.NoError(t, storage.Remove(ctx, "auth-storage"))
}

func TestValuesAreCopied(t *testing.T) {
	storage := New()
	ctx := context.Background()

	original := []byte("abc")
	require.NoError(t, storage.Set(ctx, "k", original))
	original[0] = 'x'

	value, err := storage.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), value)
}
