// Package history keeps a bounded in-memory record of recently resolved
// rounds for the lookup API. Nothing here survives a restart.
package history

import (
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/osse101/ChinchiroBot_Go/internal/domain"
)

// Store holds the most recent round records, evicting the oldest
type Store struct {
	cache *lru.Cache[uuid.UUID, domain.RoundRecord]
}

// NewStore creates a store retaining up to size records
func NewStore(size int) (*Store, error) {
	cache, err := lru.New[uuid.UUID, domain.RoundRecord](size)
	if err != nil {
		return nil, err
	}
	return &Store{cache: cache}, nil
}

// Add records a resolved round
func (s *Store) Add(record domain.RoundRecord) {
	s.cache.Add(record.ID, record)
}

// Get looks up a round by ID
func (s *Store) Get(id uuid.UUID) (domain.RoundRecord, bool) {
	return s.cache.Get(id)
}

// Recent returns up to n records, newest first
func (s *Store) Recent(n int) []domain.RoundRecord {
	keys := s.cache.Keys() // oldest to newest
	out := make([]domain.RoundRecord, 0, n)
	for i := len(keys) - 1; i >= 0 && len(out) < n; i-- {
		if record, ok := s.cache.Peek(keys[i]); ok {
			out = append(out, record)
		}
	}
	return out
}

// Len reports how many rounds are currently retained
func (s *Store) Len() int {
	return s.cache.Len()
}
