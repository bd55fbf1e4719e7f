package event

import "encoding/json"

// extractors maps provider names to functions that pull the provider's own
// event identifier out of a delivery payload.
var extractors = map[string]func(json.RawMessage) string{
	"stripe": stripeEventID,
}

// ExtractProviderEventID returns the provider-specific event identifier
// embedded in the payload, or "" when the provider defines none or the
// payload does not carry it. Callers fall back to the relay event id.
func ExtractProviderEventID(provider string, payload json.RawMessage) string {
	extract, ok := extractors[provider]
	if !ok {
		return ""
	}
	return extract(payload)
}

// stripeEventID reads the top-level "id" field of a Stripe event object.
func stripeEventID(payload json.RawMessage) string {
	var body struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return ""
	}
	return body.ID
}
