// Package domain defines the core domain models for the CW20 ledger.
//
// Domain models are pure value objects and entities without any
// IO dependencies or framework coupling. This package contains:
//
//   - Amount: checked 128-bit arithmetic for balances and allowances
//   - Address: account identifiers
//   - TokenInfo: token metadata and total supply
//   - ContractState: owner, pause flag, and reentrancy guard
//   - Outcome: structured result of a mutating operation
//   - Errors: ledger error definitions
//
// Every mutation of a balance, allowance, or the total supply routes
// through Amount.CheckedAdd and Amount.CheckedSub; nothing in this
// package or its callers ever wraps or saturates silently.
package domain
