// Package domain defines the core domain models for the CW20 ledger.
package domain

import "fmt"

// Token metadata defaults, applied when instantiate omits them.
const (
	DefaultTokenName   = "My Token"
	DefaultTokenSymbol = "MYT"
	DefaultDecimals    = 6
)

// Token metadata constraints.
const (
	MaxTokenNameLength   = 64
	MaxTokenSymbolLength = 12
	MaxDecimals          = 18
)

// TokenInfo holds token metadata and the total supply.
//
// TotalSupply equals the sum of all balances at every observable point
// between calls; mint and burn are the only operations that change it.
type TokenInfo struct {
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Decimals    uint8  `json:"decimals"`
	TotalSupply Amount `json:"total_supply"`
}

// NewTokenInfo creates TokenInfo with zero supply, substituting defaults
// for empty metadata fields.
func NewTokenInfo(name, symbol string, decimals uint8) *TokenInfo {
	if name == "" {
		name = DefaultTokenName
	}
	if symbol == "" {
		symbol = DefaultTokenSymbol
	}
	return &TokenInfo{
		Name:     name,
		Symbol:   symbol,
		Decimals: decimals,
	}
}

// Validate checks the metadata constraints.
func (t *TokenInfo) Validate() error {
	if t.Name == "" {
		return ErrMissingArgument.WithDetails("token name is required")
	}
	if len(t.Name) > MaxTokenNameLength {
		return ErrInvalidArgument.WithDetails(
			fmt.Sprintf("token name exceeds %d characters", MaxTokenNameLength))
	}
	if t.Symbol == "" {
		return ErrMissingArgument.WithDetails("token symbol is required")
	}
	if len(t.Symbol) > MaxTokenSymbolLength {
		return ErrInvalidArgument.WithDetails(
			fmt.Sprintf("token symbol exceeds %d characters", MaxTokenSymbolLength))
	}
	if t.Decimals > MaxDecimals {
		return ErrInvalidArgument.WithDetails(
			fmt.Sprintf("decimals %d exceeds maximum %d", t.Decimals, MaxDecimals))
	}
	return nil
}

// InitialBalance is one (address, amount) pair credited at instantiation.
type InitialBalance struct {
	Address Address `json:"address"`
	Amount  Amount  `json:"amount"`
}
