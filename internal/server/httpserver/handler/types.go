// Package handler provides HTTP request handlers for the CW20 ledger service.
package handler

import (
	"time"

	"github.com/rupam-04/cw20/internal/core/domain"
)

// Response is the standard API response envelope.
// All JSON responses use this format (except /metrics which uses Prometheus format).
type Response struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
	Timestamp int64  `json:"timestamp"`
	Data      any    `json:"data,omitempty"`
	Details   any    `json:"details,omitempty"` // Additional error details
}

// NewResponse creates a success response.
func NewResponse(requestID string, data any) *Response {
	return &Response{
		Code:      "OK",
		Message:   "Success",
		RequestID: requestID,
		Timestamp: time.Now().UnixMilli(),
		Data:      data,
	}
}

// NewErrorResponse creates an error response.
func NewErrorResponse(requestID, code, message string, details any) *Response {
	return &Response{
		Code:      code,
		Message:   message,
		RequestID: requestID,
		Timestamp: time.Now().UnixMilli(),
		Details:   details,
	}
}

// InstantiateRequest is the request body for POST /v1/instantiate.
type InstantiateRequest struct {
	Caller          string                `json:"caller"`
	Name            string                `json:"name,omitempty"`
	Symbol          string                `json:"symbol,omitempty"`
	Decimals        *uint8                `json:"decimals,omitempty"`
	InitialBalances []InitialBalanceEntry `json:"initial_balances,omitempty"`
}

// InitialBalanceEntry is one (address, amount) pair in an instantiate request.
type InitialBalanceEntry struct {
	Address string        `json:"address"`
	Amount  domain.Amount `json:"amount"`
}

// ExecuteRequest is the request body for POST /v1/execute. Msg carries
// exactly one message variant.
type ExecuteRequest struct {
	Caller string     `json:"caller"`
	Msg    ExecuteMsg `json:"msg"`
}

// ExecuteMsg is the tagged union of execute message variants.
type ExecuteMsg struct {
	Transfer          *TransferMsg          `json:"transfer,omitempty"`
	Approve           *ApproveMsg           `json:"approve,omitempty"`
	TransferFrom      *TransferFromMsg      `json:"transfer_from,omitempty"`
	DecreaseAllowance *DecreaseAllowanceMsg `json:"decrease_allowance,omitempty"`
	Mint              *MintMsg              `json:"mint,omitempty"`
	Burn              *BurnMsg              `json:"burn,omitempty"`
	Pause             *PauseMsg             `json:"pause,omitempty"`
	Unpause           *PauseMsg             `json:"unpause,omitempty"`
}

// TransferMsg moves caller funds to a recipient.
type TransferMsg struct {
	Recipient string        `json:"recipient"`
	Amount    domain.Amount `json:"amount"`
}

// ApproveMsg grants a spender an additional allowance.
type ApproveMsg struct {
	Spender string        `json:"spender"`
	Amount  domain.Amount `json:"amount"`
}

// TransferFromMsg spends the caller's allowance to move owner funds.
type TransferFromMsg struct {
	Owner     string        `json:"owner"`
	Recipient string        `json:"recipient"`
	Amount    domain.Amount `json:"amount"`
}

// DecreaseAllowanceMsg reduces an allowance the caller granted.
type DecreaseAllowanceMsg struct {
	Spender string        `json:"spender"`
	Amount  domain.Amount `json:"amount"`
}

// MintMsg creates new tokens for a recipient. Owner only.
type MintMsg struct {
	Recipient string        `json:"recipient"`
	Amount    domain.Amount `json:"amount"`
}

// BurnMsg destroys tokens from the caller's balance.
type BurnMsg struct {
	Amount domain.Amount `json:"amount"`
}

// PauseMsg carries no fields; pause and unpause take no arguments.
type PauseMsg struct{}

// BalanceResponse is the response body for GET /v1/balance/{address}.
type BalanceResponse struct {
	Address string        `json:"address"`
	Balance domain.Amount `json:"balance"`
}

// AllowanceResponse is the response body for GET /v1/allowance/{owner}/{spender}.
type AllowanceResponse struct {
	Owner     string        `json:"owner"`
	Spender   string        `json:"spender"`
	Allowance domain.Amount `json:"allowance"`
}

// TokenInfoResponse is the response body for GET /v1/token.
type TokenInfoResponse struct {
	Name        string        `json:"name"`
	Symbol      string        `json:"symbol"`
	Decimals    uint8         `json:"decimals"`
	TotalSupply domain.Amount `json:"total_supply"`
}
