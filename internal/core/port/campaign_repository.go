package port

import (
	"context"

	"launchpad/internal/core/domain"
)

// CampaignRepository is the campaign registry. It is an outbound port in
// hexagonal architecture. Implementations must be concurrency-safe.
type CampaignRepository interface {
	// Atomic runs fn against a repository bound to a single unit of work.
	// Writes made through that repository become visible only when fn
	// returns nil; any error discards all of them.
	Atomic(ctx context.Context, fn func(repo CampaignRepository) error) error

	// GetCampaign returns the campaign for saleAsset, or nil when absent.
	// Inside Atomic the row is locked until the unit of work ends.
	GetCampaign(ctx context.Context, saleAsset domain.Asset) (*domain.Campaign, error)

	// SaveCampaign inserts or replaces the campaign keyed by its sale asset.
	SaveCampaign(ctx context.Context, c *domain.Campaign) error

	// AppendEvent records an observation in the event outbox.
	AppendEvent(ctx context.Context, ev domain.Event) error

	// ListEvents returns the recorded observations for saleAsset, oldest first.
	ListEvents(ctx context.Context, saleAsset domain.Asset) ([]domain.Event, error)
}
