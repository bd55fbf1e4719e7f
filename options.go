package hookrelay

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/hookrelay/hookrelay-go/idempotency"
	"github.com/hookrelay/hookrelay-go/observability"
)

// WithSecret sets the shared secret used to verify envelope signatures and
// authenticate outcome reports.
func WithSecret(secret string) Option {
	return func(s *SDK) error {
		s.secret = secret
		return nil
	}
}

// WithAPIBaseURL overrides the outcome report endpoint. Takes precedence
// over the HOOKRELAY_API_URL environment variable.
func WithAPIBaseURL(url string) Option {
	return func(s *SDK) error {
		s.config.APIBaseURL = url
		return nil
	}
}

// WithHTTPClient sets the client used for outcome reports.
func WithHTTPClient(client *http.Client) Option {
	return func(s *SDK) error {
		s.client = client
		return nil
	}
}

// WithLogger sets the structured logger for the SDK instance.
func WithLogger(logger *slog.Logger) Option {
	return func(s *SDK) error {
		s.logger = logger
		return nil
	}
}

// WithTolerance sets the maximum accepted clock skew on signed timestamps.
func WithTolerance(d time.Duration) Option {
	return func(s *SDK) error {
		s.config.Tolerance = d
		return nil
	}
}

// WithReportTimeout bounds each outcome report request.
func WithReportTimeout(d time.Duration) Option {
	return func(s *SDK) error {
		s.config.ReportTimeout = d
		return nil
	}
}

// WithMaxBodyBytes sets the maximum accepted delivery body size.
func WithMaxBodyBytes(n int64) Option {
	return func(s *SDK) error {
		s.config.MaxBodyBytes = n
		return nil
	}
}

// WithTracer enables OpenTelemetry spans around callback execution.
func WithTracer(t *observability.Tracer) Option {
	return func(s *SDK) error {
		s.tracer = t
		return nil
	}
}

// WithMetrics enables metric instruments on the SDK's hot paths.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *SDK) error {
		s.metrics = m
		return nil
	}
}

// WithIdempotencyStore supplies the store consulted by handlers that enable
// duplicate suppression via WithEnforceIdempotency.
func WithIdempotencyStore(store idempotency.Store) Option {
	return func(s *SDK) error {
		s.idem = store
		return nil
	}
}
