// Package service implements the CW20 ledger operations.
//
// ContractService is the operation layer: it exposes instantiate, the
// queries, and the eight mutating operations (transfer, approve,
// transfer_from, decrease_allowance, mint, burn, pause, unpause). Each
// call loads state through a ContractStore transaction, applies
// TokenLedger and AllowanceRegistry primitives under the authorization
// and guard checks, and commits the whole delta or nothing.
//
// The storage interfaces consumed here (ContractStore, StateTx) are
// defined in this package; internal/storage/contractstore provides the
// key-value backed implementation.
package service
