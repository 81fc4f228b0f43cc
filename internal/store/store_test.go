package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lezioni/internal/core"
)

func TestCollectionLoadInitializesMissingCollection(t *testing.T) {
	backend := NewMemoryBackend()
	col := NewCollection[core.Student](backend, Students)

	items, err := col.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(items) != 0 {
		t.Errorf("Load() = %v, want empty", items)
	}

	// The empty document must now exist in the backend.
	raw, found, err := backend.Read(context.Background(), Students)
	if err != nil || !found {
		t.Fatalf("Read() found = %v, err = %v, want persisted empty document", found, err)
	}
	if strings.TrimSpace(string(raw)) != "{\n  \"students\": []\n}" {
		t.Errorf("persisted document = %q", raw)
	}
}

func TestCollectionRoundtrip(t *testing.T) {
	backend := NewMemoryBackend()
	col := NewCollection[core.Student](backend, Students)
	ctx := context.Background()

	in := []core.Student{
		{ID: "a1b2c3d4", Name: "Anna", HourlyRate: 20, Active: true, EnrolledClasses: []string{}},
		{ID: "e5f6a7b8", Name: "Bruno", HourlyRate: 18, Active: false, EnrolledClasses: []string{"c1"}},
	}
	if err := col.Save(ctx, in); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	out, err := col.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(out) != 2 || out[0].Name != "Anna" || out[1].EnrolledClasses[0] != "c1" {
		t.Errorf("Load() = %+v", out)
	}
}

func TestCollectionSaveNilStoresEmptyArray(t *testing.T) {
	backend := NewMemoryBackend()
	col := NewCollection[core.Payment](backend, Payments)
	ctx := context.Background()

	if err := col.Save(ctx, nil); err != nil {
		t.Fatalf("Save(nil) error = %v", err)
	}

	raw, _, err := backend.Read(ctx, Payments)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if string(doc[Payments]) != "[]" {
		t.Errorf("payments value = %s, want []", doc[Payments])
	}
}

func TestFileBackendRoundtrip(t *testing.T) {
	dir := t.TempDir()
	backend, err := NewFileBackend(filepath.Join(dir, "data"))
	if err != nil {
		t.Fatalf("NewFileBackend() error = %v", err)
	}
	ctx := context.Background()

	if _, found, err := backend.Read(ctx, Classes); err != nil || found {
		t.Fatalf("Read() on missing file: found = %v, err = %v", found, err)
	}

	doc := []byte(`{"classes": []}`)
	if err := backend.Write(ctx, Classes, doc); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	raw, found, err := backend.Read(ctx, Classes)
	if err != nil || !found {
		t.Fatalf("Read() found = %v, err = %v", found, err)
	}
	if string(raw) != string(doc) {
		t.Errorf("Read() = %q, want %q", raw, doc)
	}

	// One file per collection, named after it.
	if _, err := os.Stat(filepath.Join(dir, "data", "classes.json")); err != nil {
		t.Errorf("expected classes.json on disk: %v", err)
	}
}

func TestMemoryBackendCopiesDocuments(t *testing.T) {
	backend := NewMemoryBackend()
	ctx := context.Background()

	doc := []byte(`{"students": []}`)
	if err := backend.Write(ctx, Students, doc); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	doc[0] = 'X'

	raw, _, err := backend.Read(ctx, Students)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if raw[0] != '{' {
		t.Error("backend should store a copy, not the caller's slice")
	}

	raw[1] = 'X'
	again, _, _ := backend.Read(ctx, Students)
	if again[1] == 'X' {
		t.Error("backend should return a copy on read")
	}
}
