package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"launchpad/internal/core/domain"
)

type withdrawalResponse struct {
	SaleAsset    string `json:"sale_asset"`
	PaymentAsset string `json:"payment_asset"`
	Admin        string `json:"admin"`
	SaleAmount   uint64 `json:"sale_amount"`
	Proceeds     uint64 `json:"proceeds"`
}

// handleWithdraw sweeps the campaign's escrow and proceeds to its admin.
// Only the admin may call it; repeated calls return zero amounts.
func (h *Handler) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	acc, ok := caller(w, r)
	if !ok {
		return
	}
	wd, err := h.svc.Withdraw(r.Context(), domain.Asset(chi.URLParam(r, "saleAsset")), acc)
	if err != nil {
		h.writeError(w, "withdraw", err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, withdrawalResponse{
		SaleAsset:    string(wd.SaleAsset),
		PaymentAsset: string(wd.PaymentAsset),
		Admin:        string(wd.Admin),
		SaleAmount:   wd.SaleAmount,
		Proceeds:     wd.Proceeds,
	})
}
