package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openshelf/openshelf/internal/domain/auth"
	apperrors "github.com/openshelf/openshelf/internal/errors"
	"github.com/openshelf/openshelf/internal/mocks"
	"github.com/openshelf/openshelf/internal/session"
)

const testKey = "auth-storage"

type clientFixture struct {
	client    *Client
	storage   *mocks.MemoryStorage
	notifier  *mocks.RecordingNotifier
	navigator *mocks.RecordingNavigator
}

func newFixture(t *testing.T, serverURL string, opts ...func(*Options)) *clientFixture {
	t.Helper()
	f := &clientFixture{
		storage:   mocks.NewMemoryStorage(),
		notifier:  mocks.NewRecordingNotifier(),
		navigator: mocks.NewRecordingNavigator(),
	}
	o := Options{
		BaseURL:    serverURL,
		Storage:    f.storage,
		StorageKey: testKey,
		Notifier:   f.notifier,
		Navigator:  f.navigator,
		LoginPath:  "/login",
	}
	for _, apply := range opts {
		apply(&o)
	}
	f.client = NewClient(o)
	return f
}

func seedSession(t *testing.T, storage *mocks.MemoryStorage, token string) {
	t.Helper()
	record, err := session.EncodeRecord(auth.Session{
		Token:           token,
		User:            &auth.User{Name: "Alice", Role: auth.RoleAdmin},
		IsAuthenticated: true,
	})
	require.NoError(t, err)
	storage.Seed(testKey, record)
}

func TestAttachesBearerTokenFromDurableRecord(t *testing.T) {
	var gotAuth atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth.Store(r.Header.Get("Authorization"))
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	f := newFixture(t, server.URL)
	seedSession(t, f.storage, "abc")

	require.NoError(t, f.client.Get(context.Background(), "/Books", nil, nil))
	assert.Equal(t, "Bearer abc", gotAuth.Load())
}

func TestNoTokenWhenRecordAbsent(t *testing.T) {
	var gotAuth atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth.Store(r.Header.Get("Authorization"))
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	f := newFixture(t, server.URL)

	require.NoError(t, f.client.Get(context.Background(), "/Books", nil, nil))
	assert.Equal(t, "", gotAuth.Load())
	assert.Zero(t, f.notifier.Count())
}

func TestCorruptRecordFailsOpen(t *testing.T) {
	var gotAuth atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth.Store(r.Header.Get("Authorization"))
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	f := newFixture(t, server.URL)
	f.storage.Seed(testKey, []byte(`{not json`))

	// The request still goes out, just without a token, and the parse
	// failure is surfaced.
	require.NoError(t, f.client.Get(context.Background(), "/Books", nil, nil))
	assert.Equal(t, "", gotAuth.Load())
	require.Equal(t, 1, f.notifier.Count())
}

func TestSuccessUnwrapsBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"id": 7, "title": "Dune"})
	}))
	defer server.Close()

	f := newFixture(t, server.URL)

	var out struct {
		ID    int64  `json:"id"`
		Title string `json:"title"`
	}
	require.NoError(t, f.client.Get(context.Background(), "/Books/7", nil, &out))
	assert.Equal(t, int64(7), out.ID)
	assert.Equal(t, "Dune", out.Title)
}

func TestUnauthorizedClearsSessionAndRedirects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "token rejected", http.StatusUnauthorized)
	}))
	defer server.Close()

	f := newFixture(t, server.URL)
	seedSession(t, f.storage, "stale")

	err := f.client.Get(context.Background(), "/Books", nil, nil)

	// The caller still observes the failure.
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))

	// Session record cleared, exactly one notification, hard redirect.
	assert.False(t, f.storage.Has(testKey))
	assert.Equal(t, 1, f.notifier.Count())
	assert.Equal(t, []string{"/login"}, f.navigator.HardNavigations())
	assert.Empty(t, f.navigator.SoftNavigations())
}

func TestNon401ErrorsPassThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"book not found"}`, http.StatusNotFound)
	}))
	defer server.Close()

	f := newFixture(t, server.URL)
	seedSession(t, f.storage, "abc")

	err := f.client.Get(context.Background(), "/Books/999", nil, nil)

	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeNotFound, apperrors.CodeOf(err))
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "book not found", appErr.Message)

	// Non-401 failures have no opinion on the session.
	assert.True(t, f.storage.Has(testKey))
	assert.Zero(t, f.notifier.Count())
	assert.Empty(t, f.navigator.HardNavigations())
}

func TestTimeoutDoesNotClearSession(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	f := newFixture(t, server.URL, func(o *Options) {
		o.Timeout = 50 * time.Millisecond
	})
	seedSession(t, f.storage, "abc")

	err := f.client.Get(context.Background(), "/Books", nil, nil)

	require.Error(t, err)
	assert.True(t, f.storage.Has(testKey), "timeouts are ordinary errors, not session death")
	assert.Empty(t, f.navigator.HardNavigations())
}

func TestRequestAfterClearCarriesNoToken(t *testing.T) {
	var calls atomic.Int64
	var secondAuth atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "expired", http.StatusUnauthorized)
			return
		}
		secondAuth.Store(r.Header.Get("Authorization"))
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	f := newFixture(t, server.URL)
	seedSession(t, f.storage, "stale")
	ctx := context.Background()

	require.Error(t, f.client.Get(ctx, "/Books", nil, nil))

	// A new request dispatched after the 401 clear carries no token; each
	// dispatch reads whatever credential is current at that moment.
	require.NoError(t, f.client.Get(ctx, "/Authors", nil, nil))
	assert.Equal(t, "", secondAuth.Load())
}

func TestQueryParametersEncoded(t *testing.T) {
	var gotQuery atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery.Store(r.URL.RawQuery)
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	f := newFixture(t, server.URL)
	query := url.Values{}
	query.Set("title", "dune messiah")

	require.NoError(t, f.client.Get(context.Background(), "/Books/search", query, nil))
	assert.Equal(t, "title=dune+messiah", gotQuery.Load())
}

func TestDeleteSendsBody(t *testing.T) {
	var gotBody atomic.Value
	var gotMethod atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod.Store(r.Method)
		var ids []int64
		json.NewDecoder(r.Body).Decode(&ids)
		gotBody.Store(len(ids))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	f := newFixture(t, server.URL)

	require.NoError(t, f.client.Delete(context.Background(), "/Books", []int64{1, 2, 3}))
	assert.Equal(t, http.MethodDelete, gotMethod.Load())
	assert.Equal(t, 3, gotBody.Load())
}
