// Package memory is an in-memory ledger used by tests and local runs.
package memory

import (
	"context"
	"fmt"
	"sync"

	"lezioni/internal/sheets"
)

type Store struct {
	mu      sync.Mutex
	entries []sheets.Entry
}

func New() *Store {
	return &Store{}
}

// Append stores the entry and returns a synthetic row reference.
func (s *Store) Append(_ context.Context, e sheets.Entry) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, e)
	return fmt.Sprintf("mem:%d", len(s.entries)), nil
}

// Entries returns a copy of everything appended so far.
func (s *Store) Entries() []sheets.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]sheets.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}
