// Package service implements the CW20 ledger operations.
package service

import (
	"fmt"

	"github.com/rupam-04/cw20/internal/core/domain"
)

// TokenLedger owns the balance map and total supply for one call.
//
// Credit and Debit carry no authorization of their own; the operation
// layer decides who may move funds. MintSupply and BurnSupply must be
// paired 1:1 with a Credit/Debit of the same amount so the supply never
// diverges from the balance sum.
type TokenLedger struct {
	tx StateTx
}

// NewTokenLedger binds a ledger to the current call's transaction.
func NewTokenLedger(tx StateTx) *TokenLedger {
	return &TokenLedger{tx: tx}
}

// BalanceOf returns the balance for an address, zero for unseen addresses.
func (l *TokenLedger) BalanceOf(addr domain.Address) (domain.Amount, error) {
	return l.tx.Balance(addr)
}

// Credit adds amount to the address's balance.
func (l *TokenLedger) Credit(addr domain.Address, amount domain.Amount) error {
	current, err := l.tx.Balance(addr)
	if err != nil {
		return err
	}
	next, err := current.CheckedAdd(amount)
	if err != nil {
		return err
	}
	return l.tx.SetBalance(addr, next)
}

// Debit removes amount from the address's balance. It fails with
// InsufficientBalance before touching the checked subtraction, so the
// arithmetic layer only ever sees representable operands.
func (l *TokenLedger) Debit(addr domain.Address, amount domain.Amount) error {
	current, err := l.tx.Balance(addr)
	if err != nil {
		return err
	}
	if current.Lt(amount) {
		return domain.ErrInsufficientBalance.WithDetails(
			fmt.Sprintf("account %s holds %s, debit %s", addr, current, amount))
	}
	next, err := current.CheckedSub(amount)
	if err != nil {
		return err
	}
	return l.tx.SetBalance(addr, next)
}

// MintSupply increases the total supply by amount.
func (l *TokenLedger) MintSupply(amount domain.Amount) error {
	info, ok, err := l.tx.TokenInfo()
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotInstantiated
	}
	next, err := info.TotalSupply.CheckedAdd(amount)
	if err != nil {
		return err
	}
	info.TotalSupply = next
	return l.tx.SetTokenInfo(info)
}

// BurnSupply decreases the total supply by amount.
func (l *TokenLedger) BurnSupply(amount domain.Amount) error {
	info, ok, err := l.tx.TokenInfo()
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotInstantiated
	}
	next, err := info.TotalSupply.CheckedSub(amount)
	if err != nil {
		return err
	}
	info.TotalSupply = next
	return l.tx.SetTokenInfo(info)
}
