// Package signature implements signing and verification of the Hook Relay
// envelope signature: HMAC-SHA256 over "{timestamp}.{payload}", hex-encoded
// and carried as "v1=<hex>" in the X-HookRelay-Signature header.
//
// The envelope signature covers the relay-to-application hop only. It is
// distinct from the original provider's webhook signature (Stripe, GitHub,
// Shopify), which the relay verifies before re-signing.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// Prefix is the version marker every envelope signature starts with.
const Prefix = "v1="

// DefaultTolerance is the maximum allowed clock skew between the signed
// timestamp and receipt time, in either direction.
const DefaultTolerance = 5 * time.Minute

// Sign generates the envelope signature for the given payload.
// The signed content is "{timestamp}.{payload}".
// Returns a versioned signature in the format "v1=<hex>".
// Sign is pure: fixed inputs always produce the same signature.
func Sign(payload []byte, secret string, timestamp int64) string {
	content := fmt.Sprintf("%d.%s", timestamp, payload)
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(content))
	return Prefix + hex.EncodeToString(mac.Sum(nil))
}
