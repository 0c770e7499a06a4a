package domain

import (
	"strings"
	"time"
)

// Config represents the runtime configuration of a single invocation.
type Config struct {
	AccessToken string
	HTTPTimeout time.Duration
	Debug       bool
}

// DefaultConfig provides defaults for everything except the credential.
func DefaultConfig() Config {
	return Config{
		HTTPTimeout: 30 * time.Second,
	}
}

// MaskedToken returns the access token with everything but the last four
// characters hidden.
func (c Config) MaskedToken() string {
	t := strings.TrimSpace(c.AccessToken)
	if len(t) <= 4 {
		return strings.Repeat("*", len(t))
	}
	return strings.Repeat("*", len(t)-4) + t[len(t)-4:]
}
