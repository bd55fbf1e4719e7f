// Package event defines the typed webhook event delivered to user callbacks.
package event

import (
	"encoding/json"
	"time"
)

// Event is a single webhook delivery forwarded by Hook Relay.
//
// An Event is constructed fresh for each request from the delivery headers and
// body. It is never persisted by the SDK and is owned by the callback only for
// the duration of its invocation.
type Event struct {
	// ID is the relay-assigned event identifier from the
	// X-HookRelay-Event-Id header. It is never derived from payload content.
	ID string `json:"id"`

	// Provider is the upstream webhook provider (e.g. "stripe", "github").
	Provider string `json:"provider"`

	// ProviderEventID is the provider's own event identifier, extracted from
	// the payload when the provider defines one. Falls back to ID otherwise.
	ProviderEventID string `json:"provider_event_id"`

	// Payload is the raw JSON body of the delivery, exactly as signed.
	Payload json.RawMessage `json:"payload"`

	// ReceivedAt is when this SDK accepted the delivery.
	ReceivedAt time.Time `json:"received_at"`

	// Attempt is the relay's delivery attempt counter, starting at 1.
	Attempt int `json:"attempt"`

	// Replayed reports whether this delivery was manually re-sent from the
	// relay dashboard rather than triggered by a live provider event.
	Replayed bool `json:"replayed"`
}
