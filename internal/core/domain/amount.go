// Package domain defines the core domain models for the CW20 ledger.
package domain

import (
	"bytes"
	"fmt"

	"github.com/holiman/uint256"
)

// maxAmount is the largest representable amount: 2^128 - 1.
var maxAmount = func() *uint256.Int {
	m := new(uint256.Int).Lsh(uint256.NewInt(1), 128)
	return m.SubUint64(m, 1)
}()

// Amount is an unsigned 128-bit token quantity.
//
// The zero value is the zero amount and ready to use. Amounts are value
// types; arithmetic never mutates the receiver. CheckedAdd and CheckedSub
// are the only arithmetic the ledger performs, and both report a distinct
// error instead of wrapping.
type Amount struct {
	v uint256.Int
}

// NewAmount returns the Amount for a uint64 value.
func NewAmount(v uint64) Amount {
	var a Amount
	a.v.SetUint64(v)
	return a
}

// ParseAmount parses a non-negative decimal string into an Amount.
func ParseAmount(s string) (Amount, error) {
	if s == "" {
		return Amount{}, ErrMissingArgument.WithDetails("amount is required")
	}
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return Amount{}, ErrInvalidArgument.WithDetails(fmt.Sprintf("invalid amount %q", s))
	}
	if v.Gt(maxAmount) {
		return Amount{}, ErrArithmeticOverflow.WithDetails("amount exceeds 128 bits")
	}
	return Amount{v: *v}, nil
}

// MustAmount parses a decimal string and panics on failure. Test helper.
func MustAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

// CheckedAdd returns a+b, or ErrArithmeticOverflow if the sum exceeds
// 2^128 - 1.
func (a Amount) CheckedAdd(b Amount) (Amount, error) {
	// Both operands fit in 128 bits, so the 256-bit sum cannot wrap.
	sum := new(uint256.Int).Add(&a.v, &b.v)
	if sum.Gt(maxAmount) {
		return Amount{}, ErrArithmeticOverflow.WithDetails(
			fmt.Sprintf("%s + %s exceeds 128 bits", a.String(), b.String()))
	}
	return Amount{v: *sum}, nil
}

// CheckedSub returns a−b, or ErrArithmeticUnderflow if b > a.
func (a Amount) CheckedSub(b Amount) (Amount, error) {
	if b.v.Gt(&a.v) {
		return Amount{}, ErrArithmeticUnderflow.WithDetails(
			fmt.Sprintf("%s - %s is negative", a.String(), b.String()))
	}
	diff := new(uint256.Int).Sub(&a.v, &b.v)
	return Amount{v: *diff}, nil
}

// IsZero reports whether the amount is zero.
func (a Amount) IsZero() bool {
	return a.v.IsZero()
}

// Lt reports whether a < b.
func (a Amount) Lt(b Amount) bool {
	return a.v.Lt(&b.v)
}

// Equal reports whether a == b.
func (a Amount) Equal(b Amount) bool {
	return a.v.Eq(&b.v)
}

// Float64 returns the nearest float64. Lossy above 2^53; used only for
// gauges, never for ledger arithmetic.
func (a Amount) Float64() float64 {
	return a.v.Float64()
}

// String returns the decimal representation.
func (a Amount) String() string {
	return a.v.Dec()
}

// MarshalJSON encodes the amount as a decimal string, so 128-bit values
// survive JSON number precision limits.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.v.Dec() + `"`), nil
}

// UnmarshalJSON accepts a quoted decimal string or a bare JSON number.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(data, `"`))
	if s == "null" {
		return nil
	}
	parsed, err := ParseAmount(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
