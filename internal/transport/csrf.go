package transport

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
)

// The backend uses the double-submit cookie pattern: a warm-up GET sets the
// XSRF-TOKEN cookie, and every mutating request must echo its URL-decoded
// value in the X-XSRF-TOKEN header. The warm-up and header injection live
// here as a uniform pipeline stage so no higher-level operation ever
// sequences the warm-up by hand.

// requiresCSRF reports whether a method needs the CSRF header.
// Safe methods (GET, HEAD, OPTIONS, TRACE) are exempt.
func requiresCSRF(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
		return false
	default:
		return true
	}
}

// applyCSRF ensures the CSRF cookie is present, warming up at most once per
// missing-cookie state, then injects the header. A cookie still missing after
// warm-up is not an error: the header is omitted and the backend decides.
func (c *Client) applyCSRF(ctx context.Context, req *http.Request) {
	token := c.csrfToken()
	if token == "" {
		c.warmup(ctx)
		token = c.csrfToken()
	}
	if token == "" {
		c.logger.DebugContext(ctx, "csrf cookie absent, sending request without header")
		return
	}
	req.Header.Set(c.headerName, token)
}

// csrfToken reads the CSRF cookie for the backend origin from the jar and
// returns its URL-decoded value, or "" when absent.
func (c *Client) csrfToken() string {
	for _, cookie := range c.hc.Jar.Cookies(c.base) {
		if cookie.Name != c.cookieName {
			continue
		}
		decoded, err := url.QueryUnescape(cookie.Value)
		if err != nil {
			// Undecodable token: send it raw rather than dropping the header.
			return cookie.Value
		}
		return decoded
	}
	return ""
}

// warmup issues the cookie-setting GET. Failures are logged and swallowed;
// the subsequent mutating request surfaces the real error to the caller.
func (c *Client) warmup(ctx context.Context) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base.String()+c.warmupPath, nil)
	if err != nil {
		c.logger.DebugContext(ctx, "csrf warm-up request failed", slog.Any("error", err))
		return
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		c.logger.DebugContext(ctx, "csrf warm-up failed", slog.Any("error", err))
		return
	}
	closeBody(resp.Body)
}
