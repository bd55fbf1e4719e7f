package idempotency

import (
	"context"
	"sync"
	"time"
)

// compile-time interface check.
var _ Store = (*MemoryStore)(nil)

// MemoryStore is an in-process Store for single-instance deployments and
// tests. Marks expire after the configured TTL; expired entries are pruned
// lazily on each write.
type MemoryStore struct {
	mu   sync.Mutex
	seen map[string]time.Time // event id -> expiry
	ttl  time.Duration
	now  func() time.Time
}

// NewMemoryStore creates a memory store whose marks expire after ttl.
// A non-positive ttl keeps marks for the life of the process.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		seen: make(map[string]time.Time),
		ttl:  ttl,
		now:  time.Now,
	}
}

// MarkProcessed implements Store.
func (s *MemoryStore) MarkProcessed(_ context.Context, eventID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, exp := range s.seen {
		if !exp.IsZero() && now.After(exp) {
			delete(s.seen, id)
		}
	}

	if _, ok := s.seen[eventID]; ok {
		return false, nil
	}

	var exp time.Time
	if s.ttl > 0 {
		exp = now.Add(s.ttl)
	}
	s.seen[eventID] = exp
	return true, nil
}
