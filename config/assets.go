package config

import (
	"strings"
	"time"
)

// AssetsConfig contains connection settings for the asset store that holds
// client model photos.
type AssetsConfig struct {
	// BaseURL is the absolute base URL of the asset store. Empty disables
	// the asset commands.
	BaseURL string `env:"BASE_URL"`

	// Timeout bounds each asset transfer. Uploads carry image payloads, so
	// the default is looser than the API timeout.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
}

// Sanitize applies guardrails to asset storage configuration values.
func (a *AssetsConfig) Sanitize() {
	a.BaseURL = strings.TrimRight(strings.TrimSpace(a.BaseURL), "/")
	if a.Timeout <= 0 {
		a.Timeout = 30 * time.Second
	}
}

// IsEnabled returns true when an asset store is configured.
func (a *AssetsConfig) IsEnabled() bool {
	return a.BaseURL != ""
}
