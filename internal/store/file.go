package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileBackend keeps one <name>.json per collection under a data directory,
// byte-compatible with the layout the service has always used.
type FileBackend struct {
	dir string
}

func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &FileBackend{dir: dir}, nil
}

func (b *FileBackend) path(name string) string {
	return filepath.Join(b.dir, name+".json")
}

func (b *FileBackend) Read(_ context.Context, name string) ([]byte, bool, error) {
	raw, err := os.ReadFile(b.path(name))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", b.path(name), err)
	}
	return raw, true, nil
}

func (b *FileBackend) Write(_ context.Context, name string, doc []byte) error {
	if err := os.WriteFile(b.path(name), doc, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", b.path(name), err)
	}
	return nil
}
