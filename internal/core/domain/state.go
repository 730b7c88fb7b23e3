// Package domain defines the core domain models for the CW20 ledger.
package domain

import "fmt"

// ContractState holds the per-instance control flags.
//
// The host serializes calls, so these flags are never mutated
// concurrently: each operation holds the only live view of the state
// between load and commit.
type ContractState struct {
	// Owner is set once at instantiation and never changes.
	Owner Address `json:"owner"`

	// Paused gates owner-only mutations while true.
	Paused bool `json:"paused"`

	// ReentrancyGuard is true only while a guarded operation is executing.
	// A failed call rolls back in full, so a persisted state never carries
	// a set guard across call boundaries.
	ReentrancyGuard bool `json:"reentrancy_guard"`
}

// NewContractState creates the state recorded at instantiation.
func NewContractState(owner Address) *ContractState {
	return &ContractState{Owner: owner}
}

// EnterGuard marks the state as executing a guarded operation.
//
// It fails with ErrReentrantCall if the guard is already held. The
// returned release function is idempotent and must run on every exit
// path, including authorization failures after acquisition; callers
// defer it immediately.
func (s *ContractState) EnterGuard() (release func(), err error) {
	if s.ReentrancyGuard {
		return nil, ErrReentrantCall
	}
	s.ReentrancyGuard = true
	released := false
	return func() {
		if !released {
			released = true
			s.ReentrancyGuard = false
		}
	}, nil
}

// RequireOwner fails with ErrUnauthorized unless caller is the owner.
func (s *ContractState) RequireOwner(caller Address) error {
	if caller != s.Owner {
		return ErrUnauthorized.WithDetails(
			fmt.Sprintf("caller %s is not the contract owner", caller))
	}
	return nil
}

// RequireNotPaused fails with ErrContractPaused while the contract is paused.
func (s *ContractState) RequireNotPaused() error {
	if s.Paused {
		return ErrContractPaused
	}
	return nil
}
