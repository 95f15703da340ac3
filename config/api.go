package config

import (
	"strings"
	"time"
)

// APIConfig contains connection settings for the styling service API.
type APIConfig struct {
	// BaseURL is the absolute base URL of the styling service
	// (e.g., "https://api.modista.example").
	BaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:8000"`

	// Timeout bounds each HTTP request, including the CSRF warm-up.
	Timeout time.Duration `env:"API_TIMEOUT" envDefault:"10s"`

	// CSRFCookieName is the session cookie carrying the anti-forgery token.
	CSRFCookieName string `env:"CSRF_COOKIE" envDefault:"XSRF-TOKEN"`

	// CSRFHeaderName is the request header the token is echoed back in.
	CSRFHeaderName string `env:"CSRF_HEADER" envDefault:"X-XSRF-TOKEN"`

	// CSRFWarmupPath is the endpoint that seeds the anti-forgery cookie.
	CSRFWarmupPath string `env:"CSRF_WARMUP_PATH" envDefault:"/sanctum/csrf-cookie"`
}

// Sanitize applies guardrails to API configuration values.
func (a *APIConfig) Sanitize() {
	a.BaseURL = strings.TrimRight(strings.TrimSpace(a.BaseURL), "/")
	if a.Timeout <= 0 {
		a.Timeout = 10 * time.Second
	}
	if strings.TrimSpace(a.CSRFCookieName) == "" {
		a.CSRFCookieName = "XSRF-TOKEN"
	}
	if strings.TrimSpace(a.CSRFHeaderName) == "" {
		a.CSRFHeaderName = "X-XSRF-TOKEN"
	}
	if strings.TrimSpace(a.CSRFWarmupPath) == "" {
		a.CSRFWarmupPath = "/sanctum/csrf-cookie"
	}
}
