package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"launchpad/internal/core/domain"
	"launchpad/internal/core/port"
)

type purchaseRequest struct {
	Amount        uint64  `json:"amount"`
	AttachedValue *uint64 `json:"attached_value,omitempty"`
}

type receiptResponse struct {
	ID           string    `json:"id"`
	Buyer        string    `json:"buyer"`
	SaleAsset    string    `json:"sale_asset"`
	PaymentAsset string    `json:"payment_asset"`
	Amount       uint64    `json:"amount"`
	Cost         uint64    `json:"cost"`
	PurchasedAt  time.Time `json:"purchased_at"`
}

// handlePurchase buys tokens from the campaign named by {saleAsset}.
// Native-priced campaigns require attached_value equal to the cost. On
// success it returns HTTP 201 with the receipt.
func (h *Handler) handlePurchase(w http.ResponseWriter, r *http.Request) {
	acc, ok := caller(w, r)
	if !ok {
		return
	}
	var req purchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	rc, err := h.svc.Purchase(r.Context(), port.PurchaseReq{
		Caller:        acc,
		SaleAsset:     domain.Asset(chi.URLParam(r, "saleAsset")),
		Amount:        req.Amount,
		AttachedValue: req.AttachedValue,
	})
	if err != nil {
		h.writeError(w, "purchase", err)
		return
	}
	writeJSON(w, h.logger, http.StatusCreated, receiptResponse{
		ID:           rc.ID,
		Buyer:        string(rc.Buyer),
		SaleAsset:    string(rc.SaleAsset),
		PaymentAsset: string(rc.PaymentAsset),
		Amount:       rc.Amount,
		Cost:         rc.Cost,
		PurchasedAt:  rc.PurchasedAt,
	})
}
