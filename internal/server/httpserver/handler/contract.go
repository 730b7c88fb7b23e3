// Package handler provides HTTP request handlers for the CW20 ledger service.
package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rupam-04/cw20/internal/core/domain"
	"github.com/rupam-04/cw20/internal/core/service"
)

// handleInstantiate handles POST /v1/instantiate.
func (h *Handler) handleInstantiate(w http.ResponseWriter, r *http.Request) {
	var req InstantiateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "CW-SYS-4000", "invalid request body", err.Error())
		return
	}

	initial := make([]service.InitialBalanceRequest, 0, len(req.InitialBalances))
	for _, entry := range req.InitialBalances {
		initial = append(initial, service.InitialBalanceRequest{
			Address: entry.Address,
			Amount:  entry.Amount,
		})
	}

	start := time.Now()
	out, err := h.contractSvc.Instantiate(r.Context(), &service.InstantiateRequest{
		Caller:          req.Caller,
		Name:            req.Name,
		Symbol:          req.Symbol,
		Decimals:        req.Decimals,
		InitialBalances: initial,
	})
	h.recordOperation(domain.ActionInstantiate, err, start)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, out)
}

// handleExecute handles POST /v1/execute. The message body carries
// exactly one execute variant; zero or more than one is rejected.
func (h *Handler) handleExecute(w http.ResponseWriter, r *http.Request) {
	var req ExecuteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "CW-SYS-4000", "invalid request body", err.Error())
		return
	}

	action, run, err := h.dispatch(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	start := time.Now()
	out, err := run()
	h.recordOperation(action, err, start)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, out)
}

// dispatch maps an execute request onto the single service call it
// names.
func (h *Handler) dispatch(ctx context.Context, req *ExecuteRequest) (string, func() (*domain.Outcome, error), error) {
	type variant struct {
		action string
		run    func() (*domain.Outcome, error)
	}
	var variants []variant

	msg := &req.Msg
	if msg.Transfer != nil {
		m := msg.Transfer
		variants = append(variants, variant{domain.ActionTransfer, func() (*domain.Outcome, error) {
			return h.contractSvc.Transfer(ctx, &service.TransferRequest{
				Caller: req.Caller, Recipient: m.Recipient, Amount: m.Amount,
			})
		}})
	}
	if msg.Approve != nil {
		m := msg.Approve
		variants = append(variants, variant{domain.ActionApprove, func() (*domain.Outcome, error) {
			return h.contractSvc.Approve(ctx, &service.ApproveRequest{
				Caller: req.Caller, Spender: m.Spender, Amount: m.Amount,
			})
		}})
	}
	if msg.TransferFrom != nil {
		m := msg.TransferFrom
		variants = append(variants, variant{domain.ActionTransferFrom, func() (*domain.Outcome, error) {
			return h.contractSvc.TransferFrom(ctx, &service.TransferFromRequest{
				Caller: req.Caller, Owner: m.Owner, Recipient: m.Recipient, Amount: m.Amount,
			})
		}})
	}
	if msg.DecreaseAllowance != nil {
		m := msg.DecreaseAllowance
		variants = append(variants, variant{domain.ActionDecreaseAllowance, func() (*domain.Outcome, error) {
			return h.contractSvc.DecreaseAllowance(ctx, &service.DecreaseAllowanceRequest{
				Caller: req.Caller, Spender: m.Spender, Amount: m.Amount,
			})
		}})
	}
	if msg.Mint != nil {
		m := msg.Mint
		variants = append(variants, variant{domain.ActionMint, func() (*domain.Outcome, error) {
			return h.contractSvc.Mint(ctx, &service.MintRequest{
				Caller: req.Caller, Recipient: m.Recipient, Amount: m.Amount,
			})
		}})
	}
	if msg.Burn != nil {
		m := msg.Burn
		variants = append(variants, variant{domain.ActionBurn, func() (*domain.Outcome, error) {
			return h.contractSvc.Burn(ctx, &service.BurnRequest{
				Caller: req.Caller, Amount: m.Amount,
			})
		}})
	}
	if msg.Pause != nil {
		variants = append(variants, variant{domain.ActionPause, func() (*domain.Outcome, error) {
			return h.contractSvc.Pause(ctx, &service.PauseRequest{Caller: req.Caller})
		}})
	}
	if msg.Unpause != nil {
		variants = append(variants, variant{domain.ActionUnpause, func() (*domain.Outcome, error) {
			return h.contractSvc.Unpause(ctx, &service.PauseRequest{Caller: req.Caller})
		}})
	}

	switch len(variants) {
	case 0:
		return "", nil, domain.ErrMissingArgument.WithDetails("msg must carry one execute variant")
	case 1:
		return variants[0].action, variants[0].run, nil
	default:
		return "", nil, domain.ErrArgumentConflict.WithDetails("msg carries more than one execute variant")
	}
}
