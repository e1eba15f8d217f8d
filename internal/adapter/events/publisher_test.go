package events

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"launchpad/internal/core/domain"
	"launchpad/internal/metrics"
)

func TestPublishPurchase(t *testing.T) {
	var buf bytes.Buffer
	p := NewPublisher(slog.New(slog.NewTextHandler(&buf, nil)))
	before := testutil.ToFloat64(metrics.TokensSold.WithLabelValues("PUB"))

	p.Publish(context.Background(), domain.Event{
		ID:         "ev-1",
		Type:       domain.EventTokensPurchased,
		SaleAsset:  "PUB",
		OccurredAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Payload:    domain.TokensPurchased{Buyer: "bob", SaleAsset: "PUB", Amount: 7, Cost: 14},
	})

	out := buf.String()
	assert.Contains(t, out, "msg=tokens_purchased")
	assert.Contains(t, out, "buyer=bob")
	assert.Contains(t, out, "amount=7")
	assert.Contains(t, out, "cost=14")
	assert.Equal(t, before+7, testutil.ToFloat64(metrics.TokensSold.WithLabelValues("PUB")))
}

func TestPublishWithdrawal(t *testing.T) {
	var buf bytes.Buffer
	p := NewPublisher(slog.New(slog.NewTextHandler(&buf, nil)))
	before := testutil.ToFloat64(metrics.Withdrawals.WithLabelValues("WD"))

	p.Publish(context.Background(), domain.Event{
		ID:        "ev-2",
		Type:      domain.EventCampaignWithdrawn,
		SaleAsset: "WD",
		Payload:   domain.CampaignWithdrawn{SaleAsset: "WD", Admin: "alice", SaleAmount: 3, Proceeds: 9},
	})

	assert.Contains(t, buf.String(), "proceeds=9")
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.Withdrawals.WithLabelValues("WD")))
}
