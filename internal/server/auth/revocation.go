package auth

import (
	"context"
	"sync"
	"time"
)

// MemoryRevocationStore keeps revoked tokens in process memory behind a
// single mutex. Entries do not survive a restart.
type MemoryRevocationStore struct {
	mu     sync.Mutex
	tokens map[string]time.Time
}

func NewMemoryRevocationStore() *MemoryRevocationStore {
	return &MemoryRevocationStore{tokens: make(map[string]time.Time)}
}

func (s *MemoryRevocationStore) Add(_ context.Context, token string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = expiresAt
	return nil
}

func (s *MemoryRevocationStore) Contains(_ context.Context, token string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.tokens[token]
	return ok, nil
}

// Compact drops entries whose token has expired by now; such tokens fail
// verification on expiry alone. It returns the number of entries removed.
func (s *MemoryRevocationStore) Compact(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for token, exp := range s.tokens {
		if !exp.After(now) {
			delete(s.tokens, token)
			removed++
		}
	}
	return removed
}

func (s *MemoryRevocationStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tokens)
}
