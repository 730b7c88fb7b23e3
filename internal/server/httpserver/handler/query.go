// Package handler provides HTTP request handlers for the CW20 ledger service.
package handler

import "net/http"

// handleQueryBalance handles GET /v1/balance/{address}.
func (h *Handler) handleQueryBalance(w http.ResponseWriter, r *http.Request) {
	address := r.PathValue("address")

	balance, err := h.contractSvc.QueryBalance(r.Context(), address)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, BalanceResponse{
		Address: address,
		Balance: balance,
	})
}

// handleQueryAllowance handles GET /v1/allowance/{owner}/{spender}.
func (h *Handler) handleQueryAllowance(w http.ResponseWriter, r *http.Request) {
	owner := r.PathValue("owner")
	spender := r.PathValue("spender")

	allowance, err := h.contractSvc.QueryAllowance(r.Context(), owner, spender)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, AllowanceResponse{
		Owner:     owner,
		Spender:   spender,
		Allowance: allowance,
	})
}

// handleQueryTokenInfo handles GET /v1/token.
func (h *Handler) handleQueryTokenInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.contractSvc.QueryTokenInfo(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, TokenInfoResponse{
		Name:        info.Name,
		Symbol:      info.Symbol,
		Decimals:    info.Decimals,
		TotalSupply: info.TotalSupply,
	})
}
