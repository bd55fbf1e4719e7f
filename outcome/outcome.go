// Package outcome reports callback results back to the Hook Relay service.
package outcome

// Status is the terminal result of a callback invocation.
type Status string

const (
	// StatusSuccess indicates the callback completed without error.
	StatusSuccess Status = "success"

	// StatusFailure indicates the callback returned an error or panicked.
	StatusFailure Status = "failure"
)

// ErrorDetail carries structured information about a callback failure.
type ErrorDetail struct {
	// Name classifies the failure. Plain Go errors report "Error".
	Name string `json:"name"`

	// Message is the error text surfaced to the relay dashboard.
	Message string `json:"message"`

	// Stack is the goroutine stack at the point of a recovered panic.
	Stack string `json:"stack,omitempty"`
}

// Report is the body POSTed to the relay's outcome endpoint after each
// callback invocation. Exactly one report is sent per delivery; a failed
// report is logged, never retried.
type Report struct {
	Status     Status       `json:"status"`
	DurationMs int64        `json:"durationMs"`
	Error      *ErrorDetail `json:"error,omitempty"`
}
