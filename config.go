package hookrelay

import (
	"time"

	"github.com/hookrelay/hookrelay-go/outcome"
	"github.com/hookrelay/hookrelay-go/signature"
)

// DefaultAPIBaseURL is the production Hook Relay API endpoint. It is used
// when neither WithAPIBaseURL nor the HOOKRELAY_API_URL environment variable
// provides an override.
const DefaultAPIBaseURL = "https://api.hookrelay.dev"

// Environment variables consulted by New as fallbacks for explicit options.
const (
	EnvSecret     = "HOOKRELAY_SECRET"
	EnvAPIBaseURL = "HOOKRELAY_API_URL"
)

// DefaultMaxBodyBytes caps the request body read per delivery.
const DefaultMaxBodyBytes int64 = 1 << 20 // 1 MB

// Config holds the configuration for an SDK instance.
type Config struct {
	// APIBaseURL is the base URL for outcome reports.
	// Resolution order: this value, then HOOKRELAY_API_URL, then
	// DefaultAPIBaseURL.
	APIBaseURL string

	// Tolerance is the maximum allowed skew between the signed timestamp
	// and receipt time, in either direction.
	Tolerance time.Duration

	// ReportTimeout bounds each outcome report request.
	ReportTimeout time.Duration

	// MaxBodyBytes is the maximum accepted delivery body size.
	MaxBodyBytes int64
}

// DefaultConfig returns a Config with sensible defaults. APIBaseURL is left
// empty so New can distinguish an explicit override from the env fallback.
func DefaultConfig() Config {
	return Config{
		Tolerance:     signature.DefaultTolerance,
		ReportTimeout: outcome.DefaultTimeout,
		MaxBodyBytes:  DefaultMaxBodyBytes,
	}
}
