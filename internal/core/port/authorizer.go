package port

import (
	"context"

	"launchpad/internal/core/domain"
)

// Authorizer decides who may open campaigns.
type Authorizer interface {
	CanCreateCampaign(ctx context.Context, caller domain.Account) bool
}
