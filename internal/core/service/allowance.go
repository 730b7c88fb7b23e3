// Package service implements the CW20 ledger operations.
package service

import (
	"fmt"

	"github.com/rupam-04/cw20/internal/core/domain"
)

// AllowanceRegistry owns the (owner, spender) allowance map for one call.
type AllowanceRegistry struct {
	tx StateTx
}

// NewAllowanceRegistry binds a registry to the current call's transaction.
func NewAllowanceRegistry(tx StateTx) *AllowanceRegistry {
	return &AllowanceRegistry{tx: tx}
}

// AllowanceOf returns the remaining allowance, zero for unseen pairs.
func (r *AllowanceRegistry) AllowanceOf(owner, spender domain.Address) (domain.Amount, error) {
	return r.tx.Allowance(owner, spender)
}

// Increase adds amount to the allowance. Approve is additive: repeated
// approvals accumulate rather than overwrite.
func (r *AllowanceRegistry) Increase(owner, spender domain.Address, amount domain.Amount) error {
	current, err := r.tx.Allowance(owner, spender)
	if err != nil {
		return err
	}
	next, err := current.CheckedAdd(amount)
	if err != nil {
		return err
	}
	return r.tx.SetAllowance(owner, spender, next)
}

// Decrease removes amount from the allowance, failing with
// InsufficientAllowance if amount exceeds the remaining grant.
func (r *AllowanceRegistry) Decrease(owner, spender domain.Address, amount domain.Amount) error {
	current, err := r.tx.Allowance(owner, spender)
	if err != nil {
		return err
	}
	if current.Lt(amount) {
		return domain.ErrInsufficientAllowance.WithDetails(
			fmt.Sprintf("allowance from %s to %s is %s, requested %s", owner, spender, current, amount))
	}
	next, err := current.CheckedSub(amount)
	if err != nil {
		return err
	}
	return r.tx.SetAllowance(owner, spender, next)
}
