package signature

import (
	"crypto/subtle"
	"strconv"
	"strings"
	"time"
)

// Verify checks whether sig matches the expected envelope signature for the
// payload, secret, and timestamp.
//
// The hex digests are compared with an equal-length check followed by a
// constant-time comparison over every byte, so a mismatch costs the same
// whether it occurs at the first character or the last.
func Verify(payload []byte, secret string, timestamp int64, sig string) bool {
	if !strings.HasPrefix(sig, Prefix) {
		return false
	}
	expected := Sign(payload, secret, timestamp)

	got := sig[len(Prefix):]
	want := expected[len(Prefix):]
	if len(got) != len(want) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(want), []byte(got)) == 1
}

// VerifyHeader verifies a signature using the raw header values of a request.
//
// The timestamp header must parse as an integer number of unix seconds and
// lie within tolerance of now, in either direction; otherwise the signature
// is rejected without being recomputed. A non-positive tolerance falls back
// to DefaultTolerance. VerifyHeader never panics and never returns an error:
// any malformed input simply yields false.
func VerifyHeader(timestampHeader string, payload []byte, sig, secret string, tolerance time.Duration, now time.Time) bool {
	ts, err := strconv.ParseInt(strings.TrimSpace(timestampHeader), 10, 64)
	if err != nil {
		return false
	}

	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	drift := now.Sub(time.Unix(ts, 0))
	if drift < 0 {
		drift = -drift
	}
	if drift > tolerance {
		return false
	}

	return Verify(payload, secret, ts, sig)
}
