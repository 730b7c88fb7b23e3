// Package storage provides the key-value persistence layer.
package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/dgraph-io/badger/v3"
)

// BadgerKV implements KV using Badger v3.
//
// Each Update maps onto one Badger transaction, so the all-or-nothing
// commit contract comes straight from the engine.
type BadgerKV struct {
	db     *badger.DB
	cfg    BadgerConfig
	logger *slog.Logger

	closed atomic.Bool

	// Shutdown of the background GC loop.
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewBadgerKV opens a Badger-backed store.
func NewBadgerKV(cfg Config, logger *slog.Logger) (*BadgerKV, error) {
	if cfg.Dir == "" {
		return nil, fmt.Errorf("badger: dir is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	badgerCfg := cfg.Badger
	if badgerCfg.GCInterval <= 0 {
		badgerCfg = DefaultBadgerConfig()
	}

	opts := badger.DefaultOptions(cfg.Dir)
	opts.Logger = &badgerLogger{logger: logger}
	opts.BlockCacheSize = badgerCfg.CacheSize
	opts.SyncWrites = badgerCfg.SyncWrites
	// Calls are serialized by the host; conflict detection buys nothing.
	opts.DetectConflicts = false

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("badger: open db: %w", err)
	}

	kv := &BadgerKV{
		db:     db,
		cfg:    badgerCfg,
		logger: logger,
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}

	go kv.gcLoop()

	logger.Info("badger store opened",
		"dir", cfg.Dir,
		"cache_size", badgerCfg.CacheSize,
		"gc_interval", badgerCfg.GCInterval.String())

	return kv, nil
}

// View runs fn with a read-only transaction.
func (b *BadgerKV) View(ctx context.Context, fn func(tx Tx) error) error {
	if b.closed.Load() {
		return ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return b.db.View(func(txn *badger.Txn) error {
		return fn(&badgerTx{txn: txn})
	})
}

// Update runs fn with a read-write transaction, committing iff fn
// returns nil.
func (b *BadgerKV) Update(ctx context.Context, fn func(tx Tx) error) error {
	if b.closed.Load() {
		return ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return b.db.Update(func(txn *badger.Txn) error {
		return fn(&badgerTx{txn: txn})
	})
}

// Close stops the GC loop and closes the database.
func (b *BadgerKV) Close() error {
	if b.closed.Swap(true) {
		return nil
	}
	close(b.stopCh)
	<-b.doneCh
	return b.db.Close()
}

// gcLoop runs value-log GC on the configured interval.
func (b *BadgerKV) gcLoop() {
	defer close(b.doneCh)

	ticker := time.NewTicker(b.cfg.GCInterval)
	defer ticker.Stop()

	for {
		select {
		case <-b.stopCh:
			return
		case <-ticker.C:
			b.runGC()
		}
	}
}

func (b *BadgerKV) runGC() {
	start := time.Now()
	cycles := 0
	for {
		err := b.db.RunValueLogGC(b.cfg.GCThreshold)
		if err != nil {
			if !errors.Is(err, badger.ErrNoRewrite) {
				b.logger.Warn("badger gc failed", "error", err)
			}
			break
		}
		cycles++
	}
	if cycles > 0 {
		b.logger.Info("badger gc completed",
			"cycles", cycles,
			"elapsed", time.Since(start).String())
	}
}

// badgerTx adapts a Badger transaction to the Tx interface.
type badgerTx struct {
	txn *badger.Txn
}

func (t *badgerTx) Load(key []byte) ([]byte, bool, error) {
	item, err := t.txn.Get(key)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	value, err := item.ValueCopy(nil)
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func (t *badgerTx) Save(key, value []byte) error {
	return t.txn.Set(key, value)
}

func (t *badgerTx) Delete(key []byte) error {
	return t.txn.Delete(key)
}

// badgerLogger adapts slog to Badger's logger interface.
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...any) {
	l.logger.Error(fmt.Sprintf("badger: "+format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...any) {
	l.logger.Warn(fmt.Sprintf("badger: "+format, args...))
}

func (l *badgerLogger) Infof(format string, args ...any) {
	l.logger.Debug(fmt.Sprintf("badger: "+format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...any) {
	l.logger.Debug(fmt.Sprintf("badger: "+format, args...))
}
