// Package transport provides the HTTP client wrapper shared by every API
// adapter. It owns the cookie jar, injects CSRF headers on mutating requests,
// and converts HTTP/network failures into the apperrors taxonomy so callers
// always receive a classified error, never a raw transport one.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/net/publicsuffix"

	"github.com/modista/modista-go/internal/apperrors"
)

const (
	// DefaultCSRFCookieName is the cookie the backend sets on warm-up.
	DefaultCSRFCookieName = "XSRF-TOKEN"
	// DefaultCSRFHeaderName is the header mutating requests must carry.
	DefaultCSRFHeaderName = "X-XSRF-TOKEN"
	// DefaultCSRFWarmupPath is the endpoint that sets the CSRF cookie.
	DefaultCSRFWarmupPath = "/sanctum/csrf-cookie"

	defaultTimeout = 10 * time.Second
)

// Config holds construction parameters for a Client.
type Config struct {
	// BaseURL is the backend origin, e.g. "https://api.modista.example".
	BaseURL string
	// Timeout bounds each request. Defaults to 10s when zero.
	Timeout time.Duration
	// CSRFCookieName overrides the warm-up cookie name.
	CSRFCookieName string
	// CSRFHeaderName overrides the injected header name.
	CSRFHeaderName string
	// CSRFWarmupPath overrides the warm-up endpoint.
	CSRFWarmupPath string
	// HTTPClient overrides the underlying client; a cookie jar is attached
	// if the provided client has none. Intended for tests.
	HTTPClient *http.Client
	// Logger receives request-level debug logging. Defaults to slog.Default().
	Logger *slog.Logger
}

// Client is the CSRF-aware JSON HTTP client for the styling backend.
// All requests carry the session cookies held in its jar.
type Client struct {
	base       *url.URL
	hc         *http.Client
	logger     *slog.Logger
	cookieName string
	headerName string
	warmupPath string
}

// New builds a Client. Callers should pass a validated config.
func New(cfg Config) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, errors.New("transport: base URL is required")
	}
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("transport: parse base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("transport: base URL %q must be absolute", base)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}
	if hc.Jar == nil {
		jar, jarErr := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
		if jarErr != nil {
			return nil, fmt.Errorf("transport: create cookie jar: %w", jarErr)
		}
		hc.Jar = jar
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		base:       u,
		hc:         hc,
		logger:     logger,
		cookieName: fallback(cfg.CSRFCookieName, DefaultCSRFCookieName),
		headerName: fallback(cfg.CSRFHeaderName, DefaultCSRFHeaderName),
		warmupPath: fallback(cfg.CSRFWarmupPath, DefaultCSRFWarmupPath),
	}, nil
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}

// Get issues a GET request and decodes a 2xx JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST request with an optional JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Put issues a PUT request with an optional JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// Delete issues a DELETE request with no body.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

// do runs one request through the full pipeline: CSRF stage, request ID,
// JSON encoding, status classification, response decoding.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	target := c.base.String() + path

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return apperrors.Wrap(err, apperrors.CodeInternal, "encode request body")
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeInternal, "create request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if requiresCSRF(method) {
		c.applyCSRF(ctx, req)
	}

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		return apperrors.Unavailable("could not reach the styling service", err)
	}
	defer closeBody(resp.Body)

	c.logger.DebugContext(ctx, "http",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.Unavailable("could not read response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return classify(resp.StatusCode, payload)
	}

	if out == nil || len(payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return apperrors.Wrap(err, apperrors.CodeInternal, "decode response body")
	}
	return nil
}

// errorEnvelope is the backend's error body. All fields are optional;
// defaulting happens in classify, not at call sites.
type errorEnvelope struct {
	Message string              `json:"message"`
	Error   string              `json:"error"`
	Errors  map[string][]string `json:"errors"`
}

// classify maps a non-2xx response to the apperrors taxonomy.
func classify(status int, payload []byte) error {
	var env errorEnvelope
	// Ignore decode failures; an empty envelope falls through to defaults.
	_ = json.Unmarshal(payload, &env)

	message := env.Message
	if message == "" {
		message = env.Error
	}

	switch status {
	case http.StatusUnauthorized:
		return apperrors.Unauthenticated(fallback(message, "invalid credentials"))
	case http.StatusForbidden:
		return apperrors.Forbidden(fallback(message, "not authorized"))
	case http.StatusUnprocessableEntity:
		return apperrors.Validation(env.Errors)
	case http.StatusNotFound:
		return apperrors.NotFound(fallback(message, "resource not found"))
	default:
		return apperrors.Internal(fallback(message, fmt.Sprintf("unexpected response (%d)", status)))
	}
}

// closeBody drains and closes a response body so the connection can be reused.
func closeBody(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}
