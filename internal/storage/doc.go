// Package storage provides the key-value persistence layer for the
// CW20 ledger.
//
// The ledger core consumes storage only through the KV interface: a
// transactional load/save view scoped to one call, with all writes of
// one Update applied as a unit at the call boundary. Two engines are
// provided:
//
//   - badger: durable embedded storage on Badger v3
//   - memory: an in-process engine for tests and ephemeral instances
//
// Value encoding is owned by internal/storage/contractstore, which maps
// ledger entities onto keys in this store.
package storage
