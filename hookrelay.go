package hookrelay

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/hookrelay/hookrelay-go/idempotency"
	"github.com/hookrelay/hookrelay-go/observability"
	"github.com/hookrelay/hookrelay-go/outcome"
)

// SDK holds the configuration shared by all handlers it constructs.
// Multiple independently configured SDKs can coexist in one process.
type SDK struct {
	config   Config
	secret   string
	client   *http.Client
	logger   *slog.Logger
	reporter *outcome.Reporter
	tracer   *observability.Tracer
	metrics  *observability.Metrics
	idem     idempotency.Store
}

// Option configures an SDK instance.
type Option func(*SDK) error

// New creates a new SDK with the given options.
//
// The shared secret must come from WithSecret or the HOOKRELAY_SECRET
// environment variable; without one New returns ErrMissingSecret. The
// outcome endpoint resolves as explicit option, then HOOKRELAY_API_URL,
// then DefaultAPIBaseURL.
func New(opts ...Option) (*SDK, error) {
	s := &SDK{
		config: DefaultConfig(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	if s.secret == "" {
		s.secret = os.Getenv(EnvSecret)
	}
	if s.secret == "" {
		return nil, ErrMissingSecret
	}

	if s.config.APIBaseURL == "" {
		if env := os.Getenv(EnvAPIBaseURL); env != "" {
			s.config.APIBaseURL = env
		} else {
			s.config.APIBaseURL = DefaultAPIBaseURL
		}
	}

	s.reporter = outcome.NewReporter(s.config.APIBaseURL, s.secret, s.client)
	return s, nil
}
