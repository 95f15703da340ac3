package config

import "strings"

// LogConfig contains logging configuration.
type LogConfig struct {
	// Level is the minimum log level: debug, info, warn, or error.
	Level string `env:"LEVEL" envDefault:"info"`

	// Format selects the handler: "json" or "text".
	Format string `env:"FORMAT" envDefault:"json"`
}

// Sanitize normalises logging configuration values.
func (l *LogConfig) Sanitize() {
	l.Level = strings.ToLower(strings.TrimSpace(l.Level))
	switch l.Level {
	case "debug", "info", "warn", "error":
	default:
		l.Level = "info"
	}

	l.Format = strings.ToLower(strings.TrimSpace(l.Format))
	if l.Format != "text" {
		l.Format = "json"
	}
}
