package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"launchpad/internal/core/domain"
	"launchpad/internal/core/port"
	"launchpad/internal/core/port/mocks"
)

var (
	now   = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	start = now.Add(time.Hour)
	end   = start.Add(24 * time.Hour)
)

func newTestHandler(t *testing.T) (*mocks.MockLaunchpadUseCase, http.Handler) {
	svc := mocks.NewMockLaunchpadUseCase(t)
	return svc, NewHandler(svc, slog.New(slog.NewTextHandler(io.Discard, nil))).Router()
}

func do(h http.Handler, method, path, account, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if account != "" {
		req.Header.Set(CallerHeader, account)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestCreateCampaign(t *testing.T) {
	svc, h := newTestHandler(t)
	want := port.CreateCampaignReq{
		Caller:       "alice",
		SaleAsset:    "DEMO",
		PaymentAsset: "USDC",
		StartTime:    start,
		EndTime:      end,
		UnitPrice:    2,
		TotalSupply:  1000,
		MinPurchase:  1,
		MaxPurchase:  100,
	}
	svc.EXPECT().CreateCampaign(mock.Anything, want).Return(&domain.Campaign{
		SaleAsset: "DEMO", PaymentAsset: "USDC", Admin: "alice",
		StartTime: start, EndTime: end, UnitPrice: 2, TotalSupply: 1000,
		MinPurchase: 1, MaxPurchase: 100, EscrowBalance: 1000,
	}, nil)
	svc.EXPECT().Now().Return(now)

	body := fmt.Sprintf(`{"sale_asset":"DEMO","payment_asset":"USDC","start_time":%q,"end_time":%q,
		"unit_price":2,"total_supply":1000,"min_purchase":1,"max_purchase":100}`,
		start.Format(time.RFC3339), end.Format(time.RFC3339))
	rec := do(h, http.MethodPost, "/api/v1/campaigns", "alice", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp campaignResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Admin)
	assert.Equal(t, "pending", resp.Phase)
	assert.Equal(t, uint64(1000), resp.EscrowBalance)
}

func TestCreateCampaignRequiresCaller(t *testing.T) {
	_, h := newTestHandler(t)
	rec := do(h, http.MethodPost, "/api/v1/campaigns", "", `{}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateCampaignInvalidJSON(t *testing.T) {
	_, h := newTestHandler(t)
	rec := do(h, http.MethodPost, "/api/v1/campaigns", "alice", `{`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCampaignNotFound(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().GetCampaign(mock.Anything, domain.Asset("NOPE")).Return(nil, domain.ErrCampaignNotFound)

	rec := do(h, http.MethodGet, "/api/v1/campaigns/NOPE", "", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "campaign_not_found", resp.Code)
}

func TestPurchase(t *testing.T) {
	svc, h := newTestHandler(t)
	attached := uint64(100)
	svc.EXPECT().Purchase(mock.Anything, port.PurchaseReq{
		Caller: "bob", SaleAsset: "DEMO", Amount: 50, AttachedValue: &attached,
	}).Return(&domain.Receipt{
		ID: "r1", Buyer: "bob", SaleAsset: "DEMO", PaymentAsset: domain.NativeAsset,
		Amount: 50, Cost: 100, PurchasedAt: start,
	}, nil)

	rec := do(h, http.MethodPost, "/api/v1/campaigns/DEMO/purchase", "bob", `{"amount":50,"attached_value":100}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp receiptResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, uint64(100), resp.Cost)
	assert.Equal(t, "native", resp.PaymentAsset)
}

func TestPurchaseErrors(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrSaleInactive, http.StatusUnprocessableEntity, "sale_inactive"},
		{domain.ErrBelowMinimum, http.StatusUnprocessableEntity, "below_minimum"},
		{domain.ErrAboveMaximum, http.StatusUnprocessableEntity, "above_maximum"},
		{domain.ErrInsufficientTokens, http.StatusUnprocessableEntity, "insufficient_tokens"},
		{domain.ErrIncorrectPayment, http.StatusUnprocessableEntity, "incorrect_payment"},
		{domain.ErrArithmeticOverflow, http.StatusUnprocessableEntity, "arithmetic_overflow"},
		{fmt.Errorf("%w: %w", domain.ErrPaymentFailed, domain.ErrInsufficientFunds), http.StatusPaymentRequired, "payment_failed"},
		{domain.ErrReentrantCall, http.StatusConflict, "reentrant_call"},
		{fmt.Errorf("%w: %w", domain.ErrSettlementBusy, context.DeadlineExceeded), http.StatusConflict, "settlement_busy"},
		{domain.ErrEscrowCaller, http.StatusForbidden, "escrow_caller"},
		{errors.New("connection refused"), http.StatusInternalServerError, "internal"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			svc, h := newTestHandler(t)
			svc.EXPECT().Purchase(mock.Anything, mock.Anything).Return(nil, fmt.Errorf("purchase DEMO: %w", tt.err))

			rec := do(h, http.MethodPost, "/api/v1/campaigns/DEMO/purchase", "bob", `{"amount":1}`)
			require.Equal(t, tt.status, rec.Code)

			var resp errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.code, resp.Code)
			if tt.status == http.StatusInternalServerError {
				assert.Equal(t, "internal error", resp.Error)
			}
		})
	}
}

func TestWithdraw(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().Withdraw(mock.Anything, domain.Asset("DEMO"), domain.Account("alice")).Return(&domain.Withdrawal{
		SaleAsset: "DEMO", PaymentAsset: "USDC", Admin: "alice", SaleAmount: 900, Proceeds: 200,
	}, nil)
	svc.EXPECT().Withdraw(mock.Anything, domain.Asset("DEMO"), domain.Account("mallory")).Return(nil, domain.ErrNotAuthorized)

	rec := do(h, http.MethodPost, "/api/v1/campaigns/DEMO/withdraw", "alice", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp withdrawalResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, uint64(900), resp.SaleAmount)
	assert.Equal(t, uint64(200), resp.Proceeds)

	rec = do(h, http.MethodPost, "/api/v1/campaigns/DEMO/withdraw", "mallory", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestApproveAndBalance(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().Approve(mock.Anything, domain.Asset("USDC"), domain.Account("bob"), domain.Account("launchpad-escrow"), uint64(500)).Return(nil)
	svc.EXPECT().BalanceOf(mock.Anything, domain.Asset("USDC"), domain.Account("bob")).Return(uint64(9500), nil)

	rec := do(h, http.MethodPost, "/api/v1/assets/USDC/approve", "bob", `{"spender":"launchpad-escrow","amount":500}`)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(h, http.MethodGet, "/api/v1/assets/USDC/balances/bob", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp balanceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, uint64(9500), resp.Balance)
}

func TestMetricsEndpoint(t *testing.T) {
	_, h := newTestHandler(t)
	rec := do(h, http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
