package notify

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectingSink(mu *sync.Mutex, out *[]Notification) Sink {
	return SinkFunc(func(n Notification) {
		mu.Lock()
		defer mu.Unlock()
		*out = append(*out, n)
	})
}

func TestBridgeDelivers(t *testing.T) {
	var mu sync.Mutex
	var got []Notification
	bridge := NewBridge(collectingSink(&mu, &got))

	Error(bridge, "", "session expired")

	require.Len(t, got, 1)
	assert.Equal(t, KindError, got[0].Kind)
	assert.Equal(t, "session expired", got[0].Message)
	assert.False(t, got[0].OccurredAt.IsZero())
}

func TestBridgeDropsDuplicateKeys(t *testing.T) {
	var mu sync.Mutex
	var got []Notification
	bridge := NewBridge(collectingSink(&mu, &got))

	// The same logical decision may be evaluated more than once; only the
	// first delivery goes through.
	Error(bridge, "attempt-1", "login required")
	Error(bridge, "attempt-1", "login required")
	Error(bridge, "attempt-1", "login required")

	assert.Len(t, got, 1)
}

func TestBridgeDistinctKeysAllDeliver(t *testing.T) {
	var mu sync.Mutex
	var got []Notification
	bridge := NewBridge(collectingSink(&mu, &got))

	Error(bridge, "attempt-1", "login required")
	Error(bridge, "attempt-2", "login required")

	assert.Len(t, got, 2)
}

func TestBridgeEmptyKeyNeverDeduplicated(t *testing.T) {
	var mu sync.Mutex
	var got []Notification
	bridge := NewBridge(collectingSink(&mu, &got))

	Warning(bridge, "", "heads up")
	Warning(bridge, "", "heads up")

	assert.Len(t, got, 2)
}

func TestBridgeForgetAllowsRedelivery(t *testing.T) {
	var mu sync.Mutex
	var got []Notification
	bridge := NewBridge(collectingSink(&mu, &got))

	Success(bridge, "login", "welcome back")
	bridge.Forget("login")
	Success(bridge, "login", "welcome back")

	assert.Len(t, got, 2)
}

func TestBridgeFansOutToAllSinks(t *testing.T) {
	var mu sync.Mutex
	var first, second []Notification
	bridge := NewBridge(collectingSink(&mu, &first), collectingSink(&mu, &second))

	Error(bridge, "k", "boom")

	assert.Len(t, first, 1)
	assert.Len(t, second, 1)
}

func TestNilSinkFuncIsSafe(t *testing.T) {
	var f SinkFunc
	assert.NotPanics(t, func() { f.Deliver(Notification{Kind: KindError}) })
}
