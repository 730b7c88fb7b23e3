// Package domain defines the core domain models for the CW20 ledger.
package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business domain error with a structured error code.
type DomainError struct {
	Code    string // Error code (e.g., "CW-LEDG-4020")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support for error comparison.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// IsDomainError checks if an error is a DomainError with the given code.
// If code is empty, it only checks if the error is a DomainError.
func IsDomainError(err error, code string) bool {
	var de *DomainError
	if errors.As(err, &de) {
		if code == "" {
			return true
		}
		return de.Code == code
	}
	return false
}

// GetErrorCode extracts the error code from an error if it's a DomainError.
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// ============================================================================
// Ledger Errors (LEDG)
// ============================================================================

var (
	// ErrInsufficientBalance indicates the debited account holds less than the
	// requested amount.
	ErrInsufficientBalance = NewDomainError("CW-LEDG-4020", "insufficient balance")

	// ErrInsufficientAllowance indicates the spender's remaining allowance is
	// less than the requested amount.
	ErrInsufficientAllowance = NewDomainError("CW-LEDG-4021", "insufficient allowance")

	// ErrContractPaused indicates the operation is rejected while the contract
	// is paused.
	ErrContractPaused = NewDomainError("CW-LEDG-4230", "contract is paused")

	// ErrReentrantCall indicates a guarded operation was entered while the
	// reentrancy guard was already held.
	ErrReentrantCall = NewDomainError("CW-LEDG-4231", "reentrant call detected")

	// ErrNotInstantiated indicates the contract has no persisted state yet.
	ErrNotInstantiated = NewDomainError("CW-LEDG-4040", "contract not instantiated")

	// ErrAlreadyInstantiated indicates instantiate was called twice.
	ErrAlreadyInstantiated = NewDomainError("CW-LEDG-4090", "contract already instantiated")

	// ErrArithmeticOverflow indicates a checked addition exceeded 128 bits.
	ErrArithmeticOverflow = NewDomainError("CW-LEDG-5000", "arithmetic overflow")

	// ErrArithmeticUnderflow indicates a checked subtraction went below zero.
	ErrArithmeticUnderflow = NewDomainError("CW-LEDG-5001", "arithmetic underflow")
)

// ============================================================================
// Authorization Errors (AUTH)
// ============================================================================

var (
	// ErrUnauthorized indicates the caller is not the contract owner.
	ErrUnauthorized = NewDomainError("CW-AUTH-4030", "unauthorized")
)

// ============================================================================
// Argument Errors (ARG)
// ============================================================================

var (
	// ErrInvalidArgument indicates an invalid argument.
	ErrInvalidArgument = NewDomainError("CW-ARG-1001", "invalid argument")

	// ErrMissingArgument indicates a required argument is missing.
	ErrMissingArgument = NewDomainError("CW-ARG-1002", "missing required argument")

	// ErrArgumentConflict indicates conflicting arguments.
	ErrArgumentConflict = NewDomainError("CW-ARG-1003", "argument conflict")
)

// ============================================================================
// System Errors (SYS)
// ============================================================================

var (
	// ErrInternalServer indicates an internal server error.
	ErrInternalServer = NewDomainError("CW-SYS-5000", "internal server error")

	// ErrStorageError indicates a storage layer error.
	ErrStorageError = NewDomainError("CW-SYS-5001", "storage error")

	// ErrBadRequest indicates a malformed request.
	ErrBadRequest = NewDomainError("CW-SYS-4000", "bad request")

	// ErrRateLimited indicates too many requests.
	ErrRateLimited = NewDomainError("CW-SYS-4290", "too many requests")
)
