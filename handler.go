package hookrelay

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.opentelemetry.io/otel/trace"

	"github.com/hookrelay/hookrelay-go/event"
	"github.com/hookrelay/hookrelay-go/outcome"
	"github.com/hookrelay/hookrelay-go/signature"
)

// Delivery headers set by the relay on every forwarded request.
const (
	HeaderEventID   = "X-HookRelay-Event-Id"
	HeaderProvider  = "X-HookRelay-Provider"
	HeaderTimestamp = "X-HookRelay-Timestamp"
	HeaderSignature = "X-HookRelay-Signature"
	HeaderAttempt   = "X-HookRelay-Attempt"
	HeaderReplayed  = "X-HookRelay-Replayed"
)

// HandlerFunc is the user callback invoked with each verified delivery.
// A nil return reports success to the relay; an error (or panic) reports
// failure and answers 500 so the relay schedules a redelivery.
type HandlerFunc func(ctx context.Context, evt *event.Event) error

// HandlerOption configures a single handler.
type HandlerOption func(*handlerOptions) error

type handlerOptions struct {
	allowReplay        *bool
	callbackTimeout    time.Duration
	enforceIdempotency bool
	schema             *jsonschema.Schema
}

// replayDisallowed reports whether replayed deliveries must be rejected.
// Only an explicit WithAllowReplay(false) rejects; unset allows.
func (o *handlerOptions) replayDisallowed() bool {
	return o.allowReplay != nil && !*o.allowReplay
}

// WithAllowReplay sets the replay policy. Deliveries re-sent from the relay
// dashboard carry X-HookRelay-Replayed: true; passing false here rejects
// them with 400. The default (option unset) allows replays.
func WithAllowReplay(allow bool) HandlerOption {
	return func(o *handlerOptions) error {
		o.allowReplay = &allow
		return nil
	}
}

// WithCallbackTimeout bounds each callback invocation. A timeout expiry is
// reported and answered exactly like a callback error, so the relay retries.
// Zero (the default) leaves callback duration bounded only by the host
// server's own request timeout.
func WithCallbackTimeout(d time.Duration) HandlerOption {
	return func(o *handlerOptions) error {
		o.callbackTimeout = d
		return nil
	}
}

// WithEnforceIdempotency suppresses duplicate deliveries of the same event
// id using the SDK's idempotency store. A duplicate answers 202 without
// re-running the callback. Requires WithIdempotencyStore on the SDK.
func WithEnforceIdempotency(enforce bool) HandlerOption {
	return func(o *handlerOptions) error {
		o.enforceIdempotency = enforce
		return nil
	}
}

// WithSchema validates each parsed payload against the given JSON Schema
// before the callback runs. Violations answer 400.
func WithSchema(schema any) HandlerOption {
	return func(o *handlerOptions) error {
		compiled, err := compileSchema(schema)
		if err != nil {
			return err
		}
		o.schema = compiled
		return nil
	}
}

// Handler wraps fn into an http.HandlerFunc that authenticates, parses, and
// dispatches deliveries for the given provider, reporting each outcome back
// to the relay.
func (s *SDK) Handler(provider string, fn HandlerFunc, opts ...HandlerOption) (http.HandlerFunc, error) {
	if provider == "" {
		return nil, ErrMissingProvider
	}
	if fn == nil {
		return nil, ErrNilCallback
	}

	ho := &handlerOptions{}
	for _, opt := range opts {
		if err := opt(ho); err != nil {
			return nil, err
		}
	}

	return func(w http.ResponseWriter, r *http.Request) {
		s.handle(w, r, provider, fn, ho)
	}, nil
}

// handle runs the gate sequence for one delivery. Each gate returns
// immediately on failure; nothing falls through.
func (s *SDK) handle(w http.ResponseWriter, r *http.Request, provider string, fn HandlerFunc, ho *handlerOptions) {
	ctx := r.Context()

	if s.metrics != nil {
		s.metrics.EventsReceivedTotal.Inc()
	}

	eventID := r.Header.Get(HeaderEventID)
	sigHeader := r.Header.Get(HeaderSignature)
	tsHeader := r.Header.Get(HeaderTimestamp)

	if eventID == "" || sigHeader == "" || tsHeader == "" {
		writeError(w, http.StatusBadRequest, "Missing required Hook Relay headers")
		return
	}

	if got := r.Header.Get(HeaderProvider); got != provider {
		if got == "" {
			got = "unknown"
		}
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("Expected provider '%s', got '%s'", provider, got))
		return
	}

	// The signature covers the raw bytes, so the body must be read before
	// any parsing.
	body, err := io.ReadAll(io.LimitReader(r.Body, s.config.MaxBodyBytes+1))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Unable to read request body")
		return
	}
	if int64(len(body)) > s.config.MaxBodyBytes {
		writeError(w, http.StatusRequestEntityTooLarge, "Payload too large")
		return
	}

	if !signature.VerifyHeader(tsHeader, body, sigHeader, s.secret, s.config.Tolerance, time.Now()) {
		if s.metrics != nil {
			s.metrics.SignatureFailuresTotal.Inc()
		}
		s.logger.DebugContext(ctx, "signature rejected",
			"event_id", eventID,
			"provider", provider,
		)
		writeError(w, http.StatusUnauthorized, "Invalid signature")
		return
	}

	if !json.Valid(body) {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	replayed := r.Header.Get(HeaderReplayed) == "true"
	if replayed && ho.replayDisallowed() {
		writeError(w, http.StatusBadRequest, "Replayed events are not allowed")
		return
	}

	if ho.enforceIdempotency && s.idem != nil {
		first, idemErr := s.idem.MarkProcessed(ctx, eventID)
		switch {
		case idemErr != nil:
			// Fail open: the relay's bookkeeping stays authoritative.
			s.logger.ErrorContext(ctx, "idempotency check failed",
				"event_id", eventID,
				"error", idemErr,
			)
		case !first:
			s.logger.DebugContext(ctx, "duplicate delivery suppressed", "event_id", eventID)
			writeJSON(w, http.StatusAccepted, AcceptedResponse{
				Accepted:  true,
				Duplicate: true,
				EventID:   eventID,
			})
			return
		}
	}

	payload := json.RawMessage(body)

	if ho.schema != nil {
		if vErr := validatePayload(ho.schema, payload); vErr != nil {
			writeError(w, http.StatusBadRequest, "Payload validation failed: "+vErr.Error())
			return
		}
	}

	providerEventID := event.ExtractProviderEventID(provider, payload)
	if providerEventID == "" {
		providerEventID = eventID
	}

	evt := &event.Event{
		ID:              eventID,
		Provider:        provider,
		ProviderEventID: providerEventID,
		Payload:         payload,
		ReceivedAt:      time.Now().UTC(),
		Attempt:         parseAttempt(r.Header.Get(HeaderAttempt)),
		Replayed:        replayed,
	}

	var span trace.Span
	cbCtx := ctx
	if s.tracer != nil {
		cbCtx, span = s.tracer.StartHandleSpan(cbCtx, evt.ID, evt.Provider, evt.Attempt)
	}

	start := time.Now()
	cbErr := s.invoke(cbCtx, fn, evt, ho.callbackTimeout)
	elapsed := time.Since(start)

	if cbErr != nil {
		det := errorDetail(cbErr)
		if span != nil {
			s.tracer.EndHandleSpan(span, string(outcome.StatusFailure), elapsed.Milliseconds(), det.Message)
		}
		if s.metrics != nil {
			s.metrics.RecordCallback(string(outcome.StatusFailure), elapsed.Seconds())
		}
		s.logger.DebugContext(ctx, "callback failed",
			"event_id", evt.ID,
			"provider", provider,
			"attempt", evt.Attempt,
			"error", det.Message,
		)
		s.report(ctx, evt.ID, outcome.Report{
			Status:     outcome.StatusFailure,
			DurationMs: elapsed.Milliseconds(),
			Error:      det,
		})
		// 500 so the relay's retry engine knows to redeliver.
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error:   det.Message,
			EventID: evt.ID,
		})
		return
	}

	if span != nil {
		s.tracer.EndHandleSpan(span, string(outcome.StatusSuccess), elapsed.Milliseconds(), "")
	}
	if s.metrics != nil {
		s.metrics.RecordCallback(string(outcome.StatusSuccess), elapsed.Seconds())
	}
	s.report(ctx, evt.ID, outcome.Report{
		Status:     outcome.StatusSuccess,
		DurationMs: elapsed.Milliseconds(),
	})
	writeJSON(w, http.StatusAccepted, AcceptedResponse{
		Accepted: true,
		EventID:  evt.ID,
	})
}

// report sends one outcome report. Failures are logged only: the primary
// contract already succeeded or failed independently of whether the report
// landed, so the HTTP response is never affected.
func (s *SDK) report(ctx context.Context, eventID string, rep outcome.Report) {
	if s.config.ReportTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.ReportTimeout)
		defer cancel()
	}

	err := s.reporter.Send(ctx, eventID, rep)
	if s.metrics != nil {
		s.metrics.RecordReport(err == nil)
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "outcome report failed",
			"event_id", eventID,
			"status", string(rep.Status),
			"error", err,
		)
	}
}

// parseAttempt reads the relay's attempt counter, defaulting to 1.
func parseAttempt(h string) int {
	n, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil || n < 1 {
		return 1
	}
	return n
}
