package store

import (
	"context"
	"sync"
)

// MemoryBackend keeps documents in a map. Used in tests and for local runs
// that don't need persistence.
type MemoryBackend struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{docs: make(map[string][]byte)}
}

func (b *MemoryBackend) Read(_ context.Context, name string) ([]byte, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	doc, ok := b.docs[name]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(doc))
	copy(out, doc)
	return out, true, nil
}

func (b *MemoryBackend) Write(_ context.Context, name string, doc []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	stored := make([]byte, len(doc))
	copy(stored, doc)
	b.docs[name] = stored
	return nil
}
