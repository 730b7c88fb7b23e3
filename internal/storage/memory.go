// Package storage provides the key-value persistence layer.
package storage

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/rupam-04/cw20/pkg/cmap"
)

// MemoryKV is an in-process KV engine for tests and ephemeral instances.
//
// Writes are staged per transaction and applied to the shared map only
// when the Update callback succeeds, mirroring the commit semantics of
// the durable engine. A single mutex serializes Updates, matching the
// host model of one call at a time.
type MemoryKV struct {
	items  *cmap.Map[string, []byte]
	mu     sync.Mutex
	closed atomic.Bool
}

// NewMemoryKV creates an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{
		items: cmap.New[string, []byte](),
	}
}

// View runs fn against the committed state.
func (m *MemoryKV) View(ctx context.Context, fn func(tx Tx) error) error {
	if m.closed.Load() {
		return ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(&memTx{kv: m, readonly: true})
}

// Update runs fn with staged writes, committing them iff fn returns nil.
func (m *MemoryKV) Update(ctx context.Context, fn func(tx Tx) error) error {
	if m.closed.Load() {
		return ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	tx := &memTx{kv: m, staged: make(map[string][]byte)}
	if err := fn(tx); err != nil {
		return err
	}

	for key, value := range tx.staged {
		if value == nil {
			m.items.Delete(key)
			continue
		}
		m.items.Set(key, value)
	}
	return nil
}

// Close marks the store closed. Data is discarded with the process.
func (m *MemoryKV) Close() error {
	m.closed.Store(true)
	return nil
}

// memTx stages writes until commit. A nil staged value marks a delete.
type memTx struct {
	kv       *MemoryKV
	staged   map[string][]byte
	readonly bool
}

func (t *memTx) Load(key []byte) ([]byte, bool, error) {
	k := string(key)
	if !t.readonly {
		if value, ok := t.staged[k]; ok {
			if value == nil {
				return nil, false, nil
			}
			return cloneBytes(value), true, nil
		}
	}
	value, ok := t.kv.items.Get(k)
	if !ok {
		return nil, false, nil
	}
	return cloneBytes(value), true, nil
}

func (t *memTx) Save(key, value []byte) error {
	if t.readonly {
		return ErrReadOnlyTx
	}
	t.staged[string(key)] = cloneBytes(value)
	return nil
}

func (t *memTx) Delete(key []byte) error {
	if t.readonly {
		return ErrReadOnlyTx
	}
	t.staged[string(key)] = nil
	return nil
}

func cloneBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
