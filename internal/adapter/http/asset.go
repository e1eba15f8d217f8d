package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"launchpad/internal/core/domain"
)

type approveRequest struct {
	Spender string `json:"spender"`
	Amount  uint64 `json:"amount"`
}

type balanceResponse struct {
	Asset   string `json:"asset"`
	Account string `json:"account"`
	Balance uint64 `json:"balance"`
}

// handleApprove sets the allowance the caller grants spender over {asset}.
func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	acc, ok := caller(w, r)
	if !ok {
		return
	}
	var req approveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Spender == "" {
		http.Error(w, "spender is required", http.StatusBadRequest)
		return
	}
	asset := domain.Asset(chi.URLParam(r, "asset"))
	if err := h.svc.Approve(r.Context(), asset, acc, domain.Account(req.Spender), req.Amount); err != nil {
		h.writeError(w, "approve", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleBalanceOf returns the balance of {account} in {asset}.
func (h *Handler) handleBalanceOf(w http.ResponseWriter, r *http.Request) {
	asset := chi.URLParam(r, "asset")
	account := chi.URLParam(r, "account")
	bal, err := h.svc.BalanceOf(r.Context(), domain.Asset(asset), domain.Account(account))
	if err != nil {
		h.writeError(w, "balance", err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, balanceResponse{Asset: asset, Account: account, Balance: bal})
}
