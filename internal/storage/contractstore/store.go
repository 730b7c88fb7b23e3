// Package contractstore persists CW20 ledger entities in the key-value
// store.
//
// It implements the service.ContractStore interface over storage.KV,
// mapping entities onto fixed key prefixes:
//
//	state                       -> ContractState
//	token_info                  -> TokenInfo
//	balances/<address>          -> balance record
//	allowances/<owner>/<spender> -> allowance record
//
// Addresses never contain '/', so composite keys cannot collide. Values
// are JSON. Zero balances and allowances stay stored once written; the
// read path treats zero and absent identically, so readers cannot tell
// the difference.
package contractstore

import (
	"context"
	"encoding/json"

	"github.com/rupam-04/cw20/internal/core/domain"
	"github.com/rupam-04/cw20/internal/core/service"
	"github.com/rupam-04/cw20/internal/storage"
)

// Storage keys and prefixes.
const (
	stateKey        = "state"
	tokenInfoKey    = "token_info"
	balancePrefix   = "balances/"
	allowancePrefix = "allowances/"
)

// balanceRecord is the stored form of one balance entry.
type balanceRecord struct {
	Amount domain.Amount `json:"amount"`
}

// allowanceRecord is the stored form of one (owner, spender) entry.
type allowanceRecord struct {
	Amount domain.Amount `json:"amount"`
}

// Store implements service.ContractStore over a KV engine.
type Store struct {
	kv storage.KV
}

// New creates a contract store over the given KV engine.
func New(kv storage.KV) *Store {
	return &Store{kv: kv}
}

// View runs fn with a read-only state view.
func (s *Store) View(ctx context.Context, fn func(view service.StateView) error) error {
	return s.kv.View(ctx, func(tx storage.Tx) error {
		return fn(&stateTx{tx: tx})
	})
}

// Update runs fn with a mutable state transaction, committing all
// writes iff fn returns nil.
func (s *Store) Update(ctx context.Context, fn func(tx service.StateTx) error) error {
	return s.kv.Update(ctx, func(tx storage.Tx) error {
		return fn(&stateTx{tx: tx})
	})
}

// stateTx adapts one KV transaction to the service state interfaces.
type stateTx struct {
	tx storage.Tx
}

func (t *stateTx) ContractState() (*domain.ContractState, bool, error) {
	var state domain.ContractState
	ok, err := t.load([]byte(stateKey), &state)
	if err != nil || !ok {
		return nil, false, err
	}
	return &state, true, nil
}

func (t *stateTx) SetContractState(state *domain.ContractState) error {
	return t.save([]byte(stateKey), state)
}

func (t *stateTx) TokenInfo() (*domain.TokenInfo, bool, error) {
	var info domain.TokenInfo
	ok, err := t.load([]byte(tokenInfoKey), &info)
	if err != nil || !ok {
		return nil, false, err
	}
	return &info, true, nil
}

func (t *stateTx) SetTokenInfo(info *domain.TokenInfo) error {
	return t.save([]byte(tokenInfoKey), info)
}

func (t *stateTx) Balance(addr domain.Address) (domain.Amount, error) {
	var rec balanceRecord
	if _, err := t.load(balanceKey(addr), &rec); err != nil {
		return domain.Amount{}, err
	}
	// Absent entries read as the zero amount.
	return rec.Amount, nil
}

func (t *stateTx) SetBalance(addr domain.Address, amount domain.Amount) error {
	return t.save(balanceKey(addr), balanceRecord{Amount: amount})
}

func (t *stateTx) Allowance(owner, spender domain.Address) (domain.Amount, error) {
	var rec allowanceRecord
	if _, err := t.load(allowanceKey(owner, spender), &rec); err != nil {
		return domain.Amount{}, err
	}
	return rec.Amount, nil
}

func (t *stateTx) SetAllowance(owner, spender domain.Address, amount domain.Amount) error {
	return t.save(allowanceKey(owner, spender), allowanceRecord{Amount: amount})
}

// load unmarshals the value at key into target. ok is false for absent keys.
func (t *stateTx) load(key []byte, target any) (bool, error) {
	raw, ok, err := t.tx.Load(key)
	if err != nil {
		return false, domain.ErrStorageError.WithCause(err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return false, domain.ErrStorageError.WithDetails("corrupt record").WithCause(err)
	}
	return true, nil
}

func (t *stateTx) save(key []byte, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return domain.ErrStorageError.WithCause(err)
	}
	if err := t.tx.Save(key, raw); err != nil {
		return domain.ErrStorageError.WithCause(err)
	}
	return nil
}

func balanceKey(addr domain.Address) []byte {
	return []byte(balancePrefix + string(addr))
}

func allowanceKey(owner, spender domain.Address) []byte {
	return []byte(allowancePrefix + string(owner) + "/" + string(spender))
}
