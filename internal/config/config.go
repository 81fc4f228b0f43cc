// Package config loads service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"lezioni/internal/store"
)

// Config carries everything the binaries need to run. All values come from
// the environment; an optional .env file is loaded by the entrypoints before
// Load is called.
type Config struct {
	// HTTP
	Port string

	// Persistence
	StoreBackend store.BackendType
	DataDir      string
	SQLiteDBPath string
	RedisAddr    string
	RedisPass    string
	RedisDB      int

	// Payment ledger messaging. AMQPURL empty disables publishing entirely.
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// Ledger spreadsheet, consumed by the worker.
	SheetID   string
	SheetName string

	LogLevel string
}

// Load reads configuration from the environment, applying defaults.
func Load() Config {
	return Config{
		Port:         getEnv("PORT", "8000"),
		StoreBackend: store.BackendType(getEnv("STORE_BACKEND", string(store.FileType))),
		DataDir:      getEnv("DATA_DIR", "data"),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "data/lezioni.db"),
		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:    getEnv("REDIS_PASSWORD", ""),
		RedisDB:      getEnvInt("REDIS_DB", 0),
		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "lezioni"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "payment-ledger"),
		SheetID:      getEnv("LEDGER_SHEET_ID", ""),
		SheetName:    getEnv("LEDGER_SHEET_NAME", "Pagamenti"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}
}

// Validate checks the configuration for inconsistencies. All problems are
// reported at once rather than one per restart.
func (c Config) Validate() error {
	var errs []error

	if c.Port == "" {
		errs = append(errs, errors.New("PORT cannot be empty"))
	} else if _, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Errorf("PORT must be numeric, got %q", c.Port))
	}

	if !c.StoreBackend.IsValid() {
		errs = append(errs, fmt.Errorf("STORE_BACKEND must be one of file, memory, redis, sqlite, got %q", c.StoreBackend))
	}
	switch c.StoreBackend {
	case store.FileType:
		if c.DataDir == "" {
			errs = append(errs, errors.New("DATA_DIR cannot be empty with the file backend"))
		}
	case store.SQLiteType:
		if c.SQLiteDBPath == "" {
			errs = append(errs, errors.New("SQLITE_DB_PATH cannot be empty with the sqlite backend"))
		}
	case store.RedisType:
		if c.RedisAddr == "" {
			errs = append(errs, errors.New("REDIS_ADDR cannot be empty with the redis backend"))
		}
	}

	if c.AMQPURL != "" {
		if !strings.HasPrefix(c.AMQPURL, "amqp://") && !strings.HasPrefix(c.AMQPURL, "amqps://") {
			errs = append(errs, fmt.Errorf("AMQP_URL must start with amqp:// or amqps://, got %q", c.AMQPURL))
		}
		if c.AMQPExchange == "" {
			errs = append(errs, errors.New("AMQP_EXCHANGE cannot be empty when AMQP_URL is set"))
		}
		if c.AMQPQueue == "" {
			errs = append(errs, errors.New("AMQP_QUEUE cannot be empty when AMQP_URL is set"))
		}
	}

	return errors.Join(errs...)
}

// StoreConfig maps the loaded values onto the store factory config.
func (c Config) StoreConfig() store.Config {
	return store.Config{
		Type:          c.StoreBackend,
		DataDir:       c.DataDir,
		SQLiteDBPath:  c.SQLiteDBPath,
		RedisAddr:     c.RedisAddr,
		RedisPassword: c.RedisPass,
		RedisDB:       c.RedisDB,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
