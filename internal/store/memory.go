package store

import (
	"context"
	"sync"

	"loanboard/internal/core"
)

// MemoryStore keeps the collection in an insertion-ordered slice
// guarded by a mutex. It is the default backend: all state lives for
// the lifetime of the process.
type MemoryStore struct {
	mu      sync.Mutex
	loans   []core.Loan
	index   map[string]int
	version int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{index: make(map[string]int)}
}

// NewSeededMemoryStore returns a store preloaded with the reference
// portfolio.
func NewSeededMemoryStore() *MemoryStore {
	s := NewMemoryStore()
	for _, l := range SeedLoans() {
		s.loans = append(s.loans, l)
		s.index[l.ID] = len(s.loans) - 1
	}
	return s
}

func (s *MemoryStore) Add(_ context.Context, loan core.Loan) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.index[loan.ID]; exists {
		return ErrDuplicateID
	}
	s.loans = append(s.loans, loan)
	s.index[loan.ID] = len(s.loans) - 1
	s.version++
	return nil
}

func (s *MemoryStore) Update(_ context.Context, loan core.Loan) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, exists := s.index[loan.ID]
	if !exists {
		return ErrNotFound
	}
	s.loans[i] = loan
	s.version++
	return nil
}

func (s *MemoryStore) Remove(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, exists := s.index[id]
	if !exists {
		return ErrNotFound
	}
	s.loans = append(s.loans[:i], s.loans[i+1:]...)
	delete(s.index, id)
	for j := i; j < len(s.loans); j++ {
		s.index[s.loans[j].ID] = j
	}
	s.version++
	return nil
}

// List returns a copy of the collection in insertion order.
func (s *MemoryStore) List(_ context.Context) ([]core.Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Loan, len(s.loans))
	copy(out, s.loans)
	return out, nil
}

func (s *MemoryStore) Version(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version, nil
}

func (s *MemoryStore) Close() error { return nil }
