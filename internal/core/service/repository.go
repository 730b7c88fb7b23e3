// Package service implements the CW20 ledger operations.
package service

import (
	"context"

	"github.com/rupam-04/cw20/internal/core/domain"
)

// StateView is the read-only view over persisted contract state.
//
// Balance and Allowance return zero for absent entries; a zero entry and
// a missing one are indistinguishable to callers.
type StateView interface {
	// ContractState loads the control flags. ok is false before instantiation.
	ContractState() (state *domain.ContractState, ok bool, err error)

	// TokenInfo loads token metadata and total supply. ok is false before
	// instantiation.
	TokenInfo() (info *domain.TokenInfo, ok bool, err error)

	// Balance returns the balance for an address, zero if unseen.
	Balance(addr domain.Address) (domain.Amount, error)

	// Allowance returns the remaining allowance for (owner, spender),
	// zero if unseen.
	Allowance(owner, spender domain.Address) (domain.Amount, error)
}

// StateTx is one call's mutable view. Writes become visible to later
// reads within the same transaction and are committed as a unit when the
// enclosing Update returns nil; any error discards them all.
type StateTx interface {
	StateView

	SetContractState(state *domain.ContractState) error
	SetTokenInfo(info *domain.TokenInfo) error
	SetBalance(addr domain.Address, amount domain.Amount) error
	SetAllowance(owner, spender domain.Address, amount domain.Amount) error
}

// ContractStore hands out transactions over the persistent store. The
// host applies all writes of one Update atomically at the call boundary.
type ContractStore interface {
	View(ctx context.Context, fn func(view StateView) error) error
	Update(ctx context.Context, fn func(tx StateTx) error) error
}
