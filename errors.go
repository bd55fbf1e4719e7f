package hookrelay

import "errors"

// Sentinel errors returned by SDK and handler construction. These are
// configuration errors: they surface to the caller at startup and are never
// converted into HTTP responses.
var (
	// ErrMissingSecret is returned when no shared secret is configured and
	// the HOOKRELAY_SECRET environment variable is unset.
	ErrMissingSecret = errors.New("hookrelay: shared secret is required")

	// ErrMissingProvider is returned when a handler is constructed with an
	// empty provider name.
	ErrMissingProvider = errors.New("hookrelay: provider is required")

	// ErrNilCallback is returned when a handler is constructed without a
	// callback.
	ErrNilCallback = errors.New("hookrelay: callback is required")

	// ErrInvalidSchema is returned when a payload schema fails to compile.
	ErrInvalidSchema = errors.New("hookrelay: invalid payload schema")
)
