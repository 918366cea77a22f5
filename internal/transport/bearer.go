package transport

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/openshelf/openshelf/internal/notify"
	"github.com/openshelf/openshelf/internal/ports"
	"github.com/openshelf/openshelf/internal/session"
)

// bearerRoundTripper is the request half of the interceptor pipeline: it
// reads the durable session record before every outbound call and attaches
// the bearer token when one is present. It reads storage rather than the
// in-memory store so several client contexts sharing one record all see the
// latest credential.
type bearerRoundTripper struct {
	base       http.RoundTripper
	storage    ports.DurableStorage
	storageKey string
	notifier   notify.Notifier
	logger     *slog.Logger
	metrics    *Metrics
}

func (rt *bearerRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	token := rt.currentToken(req)
	if token == "" {
		return rt.base.RoundTrip(req)
	}

	// Per-request clone; the token each request carries is whatever was
	// current at dispatch time and is never retroactively updated.
	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", "Bearer "+token)
	return rt.base.RoundTrip(clone)
}

// currentToken resolves the bearer token for one dispatch. Every failure
// mode degrades to "no token": an absent record is normal, a corrupt one is
// reported and then ignored.
func (rt *bearerRoundTripper) currentToken(req *http.Request) string {
	data, err := rt.storage.Get(req.Context(), rt.storageKey)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return ""
		}
		rt.reportCorrupt(req, err)
		return ""
	}

	token, err := session.TokenFromRecord(data)
	if err != nil {
		rt.reportCorrupt(req, err)
		return ""
	}
	return token
}

func (rt *bearerRoundTripper) reportCorrupt(req *http.Request, err error) {
	rt.logger.WarnContext(req.Context(), "auth record unreadable, sending request without token", "error", err)
	rt.metrics.observeCorruptRecord()
	if rt.notifier != nil {
		notify.Error(rt.notifier, "", "Stored sign-in data could not be read")
	}
}
