package store

import (
	"context"
	"fmt"
	"log/slog"
)

// BackendType selects which Backend implementation persists the collections.
type BackendType string

const (
	FileType   BackendType = "file"
	MemoryType BackendType = "memory"
	RedisType  BackendType = "redis"
	SQLiteType BackendType = "sqlite"
)

func (bt BackendType) String() string { return string(bt) }

func (bt BackendType) IsValid() bool {
	switch bt {
	case FileType, MemoryType, RedisType, SQLiteType:
		return true
	}
	return false
}

// Config holds everything the factory may need; only the fields for the
// selected type are consulted.
type Config struct {
	Type BackendType

	// file
	DataDir string

	// sqlite
	SQLiteDBPath string

	// redis
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// CleanupFunc releases backend resources on shutdown.
type CleanupFunc func() error

// Result bundles the created backend with its optional cleanup.
type Result struct {
	Backend Backend
	Cleanup CleanupFunc
}

// New creates the configured backend.
func New(ctx context.Context, cfg Config, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if !cfg.Type.IsValid() {
		return nil, fmt.Errorf("invalid store backend type: %s", cfg.Type)
	}

	switch cfg.Type {
	case FileType:
		backend, err := NewFileBackend(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("initialize file backend: %w", err)
		}
		logger.Info("Initialized file store backend", "data_dir", cfg.DataDir)
		return &Result{Backend: backend}, nil

	case MemoryType:
		logger.Info("Initialized memory store backend")
		return &Result{Backend: NewMemoryBackend()}, nil

	case RedisType:
		backend, err := NewRedisBackend(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, fmt.Errorf("initialize redis backend: %w", err)
		}
		logger.Info("Initialized redis store backend", "addr", cfg.RedisAddr, "db", cfg.RedisDB)
		return &Result{Backend: backend, Cleanup: backend.Close}, nil

	case SQLiteType:
		backend, err := NewSQLiteBackend(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite backend: %w", err)
		}
		logger.Info("Initialized sqlite store backend", "db_path", cfg.SQLiteDBPath)
		return &Result{Backend: backend, Cleanup: backend.Close}, nil

	default:
		return nil, fmt.Errorf("unsupported store backend type: %s", cfg.Type)
	}
}
