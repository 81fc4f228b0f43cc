// Package store persists named whole-collection documents.
//
// Every collection is stored as a single JSON document with one array-valued
// key (e.g. {"students": [...]}). Callers load the full collection, mutate it
// in memory, and save it back wholesale; there is no partial write and no
// isolation between concurrent writers (single-writer assumption).
package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// Collection names. Each maps to one persisted document and doubles as the
// envelope key inside it.
const (
	Students   = "students"
	Classes    = "classes"
	Sessions   = "sessions"
	Attendance = "attendance"
	Payments   = "payments"
)

// Backend reads and writes raw collection documents by name. Read reports
// found=false for a collection that was never written; it never invents an
// empty document itself, Collection handles first-access initialization.
type Backend interface {
	Read(ctx context.Context, name string) (doc []byte, found bool, err error)
	Write(ctx context.Context, name string, doc []byte) error
}

// Collection is a typed repository over one named document.
type Collection[T any] struct {
	name    string
	backend Backend
}

func NewCollection[T any](backend Backend, name string) *Collection[T] {
	return &Collection[T]{name: name, backend: backend}
}

// Name returns the collection name.
func (c *Collection[T]) Name() string { return c.name }

// Load reads the current state of the collection. On first access to a
// missing collection it persists the empty default before returning it, so
// the document exists on disk from then on.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	raw, found, err := c.backend.Read(ctx, c.name)
	if err != nil {
		return nil, fmt.Errorf("read collection %s: %w", c.name, err)
	}
	if !found {
		if err := c.Save(ctx, []T{}); err != nil {
			return nil, fmt.Errorf("initialize collection %s: %w", c.name, err)
		}
		return []T{}, nil
	}

	var doc map[string][]T
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode collection %s: %w", c.name, err)
	}
	items := doc[c.name]
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Save overwrites the collection with items. A nil slice is stored as the
// empty array so the document always keeps its {"name": []} shape.
func (c *Collection[T]) Save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.MarshalIndent(map[string][]T{c.name: items}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", c.name, err)
	}
	if err := c.backend.Write(ctx, c.name, raw); err != nil {
		return fmt.Errorf("write collection %s: %w", c.name, err)
	}
	return nil
}
