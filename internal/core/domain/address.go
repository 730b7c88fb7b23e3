// Package domain defines the core domain models for the CW20 ledger.
package domain

import "fmt"

// Address length limits. The upper bound covers bech32 addresses with
// long human-readable prefixes.
const (
	MinAddressLength = 3
	MaxAddressLength = 90
)

// Address identifies an account. The host authenticates callers; the
// ledger only requires addresses to be well-formed and usable as storage
// key segments.
type Address string

// ParseAddress validates a raw address string.
//
// Addresses are limited to lowercase/uppercase letters, digits, and the
// characters '.', '_', and '-'. The path separator '/' is rejected so an
// address can never collide with a composite storage key.
func ParseAddress(s string) (Address, error) {
	if s == "" {
		return "", ErrMissingArgument.WithDetails("address is required")
	}
	if len(s) < MinAddressLength || len(s) > MaxAddressLength {
		return "", ErrInvalidArgument.WithDetails(
			fmt.Sprintf("address %q must be %d-%d characters", s, MinAddressLength, MaxAddressLength))
	}
	for _, r := range s {
		if !isAddressRune(r) {
			return "", ErrInvalidArgument.WithDetails(
				fmt.Sprintf("address %q contains invalid character %q", s, r))
		}
	}
	return Address(s), nil
}

func isAddressRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '.' || r == '_' || r == '-':
		return true
	}
	return false
}

// String returns the address as a plain string.
func (a Address) String() string {
	return string(a)
}
