package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"launchpad/internal/core/domain"
	"launchpad/internal/core/port"
)

type createCampaignRequest struct {
	SaleAsset    string    `json:"sale_asset"`
	PaymentAsset string    `json:"payment_asset"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	UnitPrice    uint64    `json:"unit_price"`
	TotalSupply  uint64    `json:"total_supply"`
	MinPurchase  uint64    `json:"min_purchase"`
	MaxPurchase  uint64    `json:"max_purchase"`
}

type campaignResponse struct {
	SaleAsset     string    `json:"sale_asset"`
	PaymentAsset  string    `json:"payment_asset"`
	Admin         string    `json:"admin"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	UnitPrice     uint64    `json:"unit_price"`
	TotalSupply   uint64    `json:"total_supply"`
	Sold          uint64    `json:"sold"`
	MinPurchase   uint64    `json:"min_purchase"`
	MaxPurchase   uint64    `json:"max_purchase"`
	EscrowBalance uint64    `json:"escrow_balance"`
	Proceeds      uint64    `json:"proceeds"`
	Phase         string    `json:"phase"`
}

func toCampaignResponse(c *domain.Campaign, now time.Time) campaignResponse {
	return campaignResponse{
		SaleAsset:     string(c.SaleAsset),
		PaymentAsset:  string(c.PaymentAsset),
		Admin:         string(c.Admin),
		StartTime:     c.StartTime,
		EndTime:       c.EndTime,
		UnitPrice:     c.UnitPrice,
		TotalSupply:   c.TotalSupply,
		Sold:          c.Sold,
		MinPurchase:   c.MinPurchase,
		MaxPurchase:   c.MaxPurchase,
		EscrowBalance: c.EscrowBalance,
		Proceeds:      c.Proceeds,
		Phase:         string(c.Phase(now)),
	}
}

// handleCreateCampaign opens a campaign on behalf of the calling account,
// which must have approved the escrow account for the total supply. On
// success it returns HTTP 201 with the stored campaign.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	acc, ok := caller(w, r)
	if !ok {
		return
	}
	var req createCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.SaleAsset == "" || req.PaymentAsset == "" {
		http.Error(w, "sale_asset and payment_asset are required", http.StatusBadRequest)
		return
	}

	c, err := h.svc.CreateCampaign(r.Context(), port.CreateCampaignReq{
		Caller:       acc,
		SaleAsset:    domain.Asset(req.SaleAsset),
		PaymentAsset: domain.Asset(req.PaymentAsset),
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		UnitPrice:    req.UnitPrice,
		TotalSupply:  req.TotalSupply,
		MinPurchase:  req.MinPurchase,
		MaxPurchase:  req.MaxPurchase,
	})
	if err != nil {
		h.writeError(w, "create campaign", err)
		return
	}
	writeJSON(w, h.logger, http.StatusCreated, toCampaignResponse(c, h.svc.Now()))
}

// handleGetCampaign returns the campaign for the {saleAsset} path
// parameter together with its current phase. Unknown assets yield 404.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.GetCampaign(r.Context(), domain.Asset(chi.URLParam(r, "saleAsset")))
	if err != nil {
		h.writeError(w, "get campaign", err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, toCampaignResponse(c, h.svc.Now()))
}
