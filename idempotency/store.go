// Package idempotency provides optional local duplicate suppression for
// relay deliveries. The relay's own exactly-once bookkeeping remains
// authoritative; a store here only short-circuits redundant callback runs
// within the window covered by its TTL.
package idempotency

import "context"

// Store records which relay event ids have already been processed.
type Store interface {
	// MarkProcessed records eventID as processed. It returns true when this
	// call made the first mark, false when the event was already recorded.
	MarkProcessed(ctx context.Context, eventID string) (bool, error)
}
