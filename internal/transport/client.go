package transport

// Package transport is the HTTP interceptor pipeline wrapping every API
// call: bearer injection on the way out, body unwrapping and centralized
// 401 handling on the way back. Handling 401 here, rather than at every
// call site, guarantees one consistent "session died" behavior no matter
// which call tripped it.

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "github.com/openshelf/openshelf/internal/errors"
	"github.com/openshelf/openshelf/internal/notify"
	"github.com/openshelf/openshelf/internal/ports"
)

const defaultTimeout = 10 * time.Second

// Options groups dependencies for NewClient.
type Options struct {
	// BaseURL is the API base including the common path prefix, without a
	// trailing slash.
	BaseURL string

	// Timeout bounds every request. Defaults to 10 seconds.
	Timeout time.Duration

	Storage    ports.DurableStorage
	StorageKey string
	Notifier   notify.Notifier
	Navigator  ports.Navigator

	// LoginPath is where a 401 hard-redirects to. Defaults to "/login".
	LoginPath string

	Logger  *slog.Logger
	Metrics *Metrics

	// Base is the underlying round tripper, overridable in tests.
	Base http.RoundTripper
}

// Client issues JSON requests through the interceptor pipeline.
type Client struct {
	http       *http.Client
	baseURL    string
	storage    ports.DurableStorage
	storageKey string
	notifier   notify.Notifier
	navigator  ports.Navigator
	loginPath  string
	logger     *slog.Logger
	metrics    *Metrics
}

// NewClient constructs the pipeline client.
func NewClient(opts Options) *Client {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	loginPath := opts.LoginPath
	if loginPath == "" {
		loginPath = "/login"
	}
	base := opts.Base
	if base == nil {
		base = http.DefaultTransport
	}

	return &Client{
		http: &http.Client{
			Timeout: timeout,
			Transport: &bearerRoundTripper{
				base:       base,
				storage:    opts.Storage,
				storageKey: opts.StorageKey,
				notifier:   opts.Notifier,
				logger:     logger,
				metrics:    opts.Metrics,
			},
		},
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		storage:    opts.Storage,
		storageKey: opts.StorageKey,
		notifier:   opts.Notifier,
		navigator:  opts.Navigator,
		loginPath:  loginPath,
		logger:     logger,
		metrics:    opts.Metrics,
	}
}

// Get issues a GET and decodes the response body into out (unless nil).
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post issues a POST with a JSON body and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, query url.Values, body, out any) error {
	return c.do(ctx, http.MethodPost, path, query, body, out)
}

// Put issues a PUT with a JSON body and decodes the response into out.
func (c *Client) Put(ctx context.Context, path string, query url.Values, body, out any) error {
	return c.do(ctx, http.MethodPut, path, query, body, out)
}

// Delete issues a DELETE. Batch endpoints take the ids as a JSON body.
func (c *Client) Delete(ctx context.Context, path string, body any) error {
	return c.do(ctx, http.MethodDelete, path, nil, body, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.observeRequest(method, 0, time.Since(start))
		// Timeouts and transport failures pass through untouched; they
		// never clear the session.
		return apperrors.MapHTTPError(0, "", err)
	}
	defer resp.Body.Close()
	c.metrics.observeRequest(method, resp.StatusCode, time.Since(start))

	if resp.StatusCode == http.StatusUnauthorized {
		return c.handleUnauthorized(ctx, resp)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.Internal("read response body", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apperrors.MapHTTPError(resp.StatusCode, errorMessage(raw), nil)
	}

	// Callers receive the body directly, never the transport envelope.
	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return apperrors.Internal("decode response body", err)
		}
	}
	return nil
}

// handleUnauthorized is the one path that clears the session from outside an
// explicit logout: notify once, drop the durable record, hard-redirect to
// login so everything restarts from a clean slate, then still hand the
// error back to the call site.
func (c *Client) handleUnauthorized(ctx context.Context, resp *http.Response) error {
	raw, _ := io.ReadAll(resp.Body)

	c.logger.WarnContext(ctx, "unauthorized response, clearing session",
		"path", resp.Request.URL.Path,
	)
	c.metrics.observeUnauthorized()
	if c.notifier != nil {
		notify.Error(c.notifier, "", "Unauthorized, please log in again")
	}
	if err := c.storage.Remove(ctx, c.storageKey); err != nil {
		c.logger.ErrorContext(ctx, "clear session record failed", "error", err)
	}
	if c.navigator != nil {
		c.navigator.Assign(c.loginPath)
	}
	return apperrors.MapHTTPError(http.StatusUnauthorized, errorMessage(raw), nil)
}

// errorMessage extracts a human-readable message from an error body.
// Plain-text bodies are used as-is; JSON bodies contribute their "message"
// or "error" field when present.
func errorMessage(raw []byte) string {
	text := strings.TrimSpace(string(raw))
	if text == "" || text[0] != '{' {
		return text
	}
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return text
	}
	if payload.Message != "" {
		return payload.Message
	}
	if payload.Error != "" {
		return payload.Error
	}
	return text
}
