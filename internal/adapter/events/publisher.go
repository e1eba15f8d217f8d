package events

import (
	"context"
	"log/slog"

	"launchpad/internal/core/domain"
	"launchpad/internal/metrics"
)

// Publisher implements port.EventPublisher by writing each committed
// event to the structured log and updating the settlement metrics.
type Publisher struct {
	logger *slog.Logger
}

// NewPublisher returns a publisher writing to logger.
func NewPublisher(logger *slog.Logger) *Publisher {
	return &Publisher{logger: logger}
}

// Publish records ev.
func (p *Publisher) Publish(ctx context.Context, ev domain.Event) {
	attrs := []slog.Attr{
		slog.String("event_id", ev.ID),
		slog.String("sale_asset", string(ev.SaleAsset)),
		slog.Time("occurred_at", ev.OccurredAt),
	}

	switch pl := ev.Payload.(type) {
	case domain.CampaignCreated:
		metrics.CampaignsCreated.Inc()
		attrs = append(attrs,
			slog.String("admin", string(pl.Admin)),
			slog.Time("start_time", pl.StartTime),
			slog.Time("end_time", pl.EndTime),
		)
	case domain.TokensPurchased:
		metrics.Purchases.WithLabelValues(string(pl.SaleAsset)).Inc()
		metrics.TokensSold.WithLabelValues(string(pl.SaleAsset)).Add(float64(pl.Amount))
		attrs = append(attrs,
			slog.String("buyer", string(pl.Buyer)),
			slog.Uint64("amount", pl.Amount),
			slog.Uint64("cost", pl.Cost),
		)
	case domain.CampaignWithdrawn:
		metrics.Withdrawals.WithLabelValues(string(pl.SaleAsset)).Inc()
		attrs = append(attrs,
			slog.String("admin", string(pl.Admin)),
			slog.Uint64("sale_amount", pl.SaleAmount),
			slog.Uint64("proceeds", pl.Proceeds),
		)
	}

	p.logger.LogAttrs(ctx, slog.LevelInfo, string(ev.Type), attrs...)
}
