// Package storage provides the key-value persistence layer.
package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// Common errors.
var (
	ErrClosed     = errors.New("kv store closed")
	ErrReadOnlyTx = errors.New("write in read-only transaction")
)

// Engine names accepted by Config.Engine.
const (
	EngineBadger = "badger"
	EngineMemory = "memory"
)

// Tx is a single call's view over the store. Writes made through Save
// and Delete are visible to later Loads in the same transaction and are
// committed atomically when the enclosing Update returns nil.
type Tx interface {
	// Load retrieves a value. ok is false if the key is absent.
	Load(key []byte) (value []byte, ok bool, err error)

	// Save stores a key-value pair.
	Save(key, value []byte) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(key []byte) error
}

// KV is the persistence interface the ledger core runs on.
//
// The host serializes calls, so implementations need not support
// concurrent Updates, but they must guarantee that one Update's writes
// commit all-or-nothing.
type KV interface {
	// View runs fn with a read-only transaction.
	View(ctx context.Context, fn func(tx Tx) error) error

	// Update runs fn with a read-write transaction and commits its
	// writes iff fn returns nil.
	Update(ctx context.Context, fn func(tx Tx) error) error

	// Close gracefully shuts down the engine.
	Close() error
}

// Config configures a KV engine.
type Config struct {
	// Engine selects the implementation ("badger" or "memory").
	// Default: "badger".
	Engine string

	// Dir is the storage directory (badger only).
	Dir string

	// Badger holds Badger-specific tuning parameters.
	Badger BadgerConfig
}

// BadgerConfig contains Badger-specific tuning parameters.
type BadgerConfig struct {
	// GCInterval is the interval between value-log GC runs.
	// Default: 10m.
	GCInterval time.Duration

	// GCThreshold is the GC discard ratio threshold (0.0-1.0).
	// Default: 0.5.
	GCThreshold float64

	// CacheSize is the block cache size in bytes. Default: 64MB.
	CacheSize int64

	// SyncWrites enables fsync after each commit. The ledger's
	// all-or-nothing call boundary relies on committed state surviving
	// restarts, so this defaults to true.
	SyncWrites bool
}

// DefaultConfig returns the default KV configuration.
func DefaultConfig(dir string) Config {
	return Config{
		Engine: EngineBadger,
		Dir:    dir,
		Badger: DefaultBadgerConfig(),
	}
}

// DefaultBadgerConfig returns the default Badger configuration.
func DefaultBadgerConfig() BadgerConfig {
	return BadgerConfig{
		GCInterval:  10 * time.Minute,
		GCThreshold: 0.5,
		CacheSize:   64 << 20, // 64MB
		SyncWrites:  true,
	}
}

// Open creates the KV engine selected by cfg.Engine.
func Open(cfg Config, logger *slog.Logger) (KV, error) {
	switch cfg.Engine {
	case "", EngineBadger:
		return NewBadgerKV(cfg, logger)
	case EngineMemory:
		return NewMemoryKV(), nil
	default:
		return nil, fmt.Errorf("storage: unknown engine %q", cfg.Engine)
	}
}
