package contractstore

import (
	"context"
	"errors"
	"testing"

	"github.com/rupam-04/cw20/internal/core/domain"
	"github.com/rupam-04/cw20/internal/core/service"
	"github.com/rupam-04/cw20/internal/storage"
)

func newTestStore() *Store {
	return New(storage.NewMemoryKV())
}

func TestStore_ContractStateRoundTrip(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	// Before instantiation nothing is stored.
	_ = store.View(ctx, func(view service.StateView) error {
		if _, ok, err := view.ContractState(); err != nil || ok {
			t.Errorf("ContractState on empty store: ok=%v err=%v", ok, err)
		}
		if _, ok, err := view.TokenInfo(); err != nil || ok {
			t.Errorf("TokenInfo on empty store: ok=%v err=%v", ok, err)
		}
		return nil
	})

	err := store.Update(ctx, func(tx service.StateTx) error {
		state := domain.NewContractState("alice")
		state.Paused = true
		if err := tx.SetContractState(state); err != nil {
			return err
		}
		info := domain.NewTokenInfo("Test Token", "TST", 8)
		info.TotalSupply = domain.NewAmount(1000)
		return tx.SetTokenInfo(info)
	})
	if err != nil {
		t.Fatalf("Update error = %v", err)
	}

	_ = store.View(ctx, func(view service.StateView) error {
		state, ok, err := view.ContractState()
		if err != nil || !ok {
			t.Fatalf("ContractState: ok=%v err=%v", ok, err)
		}
		if state.Owner != "alice" || !state.Paused || state.ReentrancyGuard {
			t.Errorf("state = %+v", state)
		}

		info, ok, err := view.TokenInfo()
		if err != nil || !ok {
			t.Fatalf("TokenInfo: ok=%v err=%v", ok, err)
		}
		if info.Symbol != "TST" || info.Decimals != 8 || !info.TotalSupply.Equal(domain.NewAmount(1000)) {
			t.Errorf("info = %+v", info)
		}
		return nil
	})
}

func TestStore_BalanceZeroDefault(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	_ = store.View(ctx, func(view service.StateView) error {
		amount, err := view.Balance("ghost")
		if err != nil {
			t.Fatalf("Balance error = %v", err)
		}
		if !amount.IsZero() {
			t.Errorf("unseen balance = %s, want 0", amount)
		}
		return nil
	})

	_ = store.Update(ctx, func(tx service.StateTx) error {
		return tx.SetBalance("alice", domain.NewAmount(42))
	})

	_ = store.View(ctx, func(view service.StateView) error {
		amount, _ := view.Balance("alice")
		if !amount.Equal(domain.NewAmount(42)) {
			t.Errorf("balance = %s, want 42", amount)
		}
		return nil
	})

	// An explicit zero entry reads the same as an absent one.
	_ = store.Update(ctx, func(tx service.StateTx) error {
		return tx.SetBalance("alice", domain.Amount{})
	})
	_ = store.View(ctx, func(view service.StateView) error {
		amount, _ := view.Balance("alice")
		if !amount.IsZero() {
			t.Errorf("zeroed balance = %s, want 0", amount)
		}
		return nil
	})
}

func TestStore_AllowanceKeying(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	_ = store.Update(ctx, func(tx service.StateTx) error {
		if err := tx.SetAllowance("alice", "bob", domain.NewAmount(50)); err != nil {
			return err
		}
		return tx.SetAllowance("bob", "alice", domain.NewAmount(7))
	})

	_ = store.View(ctx, func(view service.StateView) error {
		got, _ := view.Allowance("alice", "bob")
		if !got.Equal(domain.NewAmount(50)) {
			t.Errorf("allowance(alice,bob) = %s, want 50", got)
		}
		// Direction matters: (owner, spender) is ordered.
		got, _ = view.Allowance("bob", "alice")
		if !got.Equal(domain.NewAmount(7)) {
			t.Errorf("allowance(bob,alice) = %s, want 7", got)
		}
		got, _ = view.Allowance("alice", "carol")
		if !got.IsZero() {
			t.Errorf("unseen allowance = %s, want 0", got)
		}
		return nil
	})
}

func TestStore_CorruptRecord(t *testing.T) {
	kv := storage.NewMemoryKV()
	store := New(kv)
	ctx := context.Background()

	_ = kv.Update(ctx, func(tx storage.Tx) error {
		return tx.Save([]byte("balances/alice"), []byte("not json"))
	})

	err := store.View(ctx, func(view service.StateView) error {
		_, err := view.Balance("alice")
		return err
	})
	if !errors.Is(err, domain.ErrStorageError) {
		t.Errorf("corrupt record error = %v, want StorageError", err)
	}
}
