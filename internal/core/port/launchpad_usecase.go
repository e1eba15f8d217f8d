package port

import (
	"context"
	"time"

	"launchpad/internal/core/domain"
)

// LaunchpadUseCase defines the business operations exposed by the
// settlement engine. It is the primary port into the application domain.
type LaunchpadUseCase interface {
	// CreateCampaign stores a new campaign and escrows its total supply
	// from the caller. Nothing is stored when funding fails.
	CreateCampaign(ctx context.Context, req CreateCampaignReq) (*domain.Campaign, error)

	// GetCampaign returns the campaign for a sale asset or
	// domain.ErrCampaignNotFound.
	GetCampaign(ctx context.Context, saleAsset domain.Asset) (*domain.Campaign, error)

	// Purchase exchanges payment for sale asset inside the sale window.
	// Both legs settle or neither does.
	Purchase(ctx context.Context, req PurchaseReq) (*domain.Receipt, error)

	// Withdraw sweeps the campaign's escrowed sale asset and proceeds to
	// its admin. Repeated calls sweep zero and succeed.
	Withdraw(ctx context.Context, saleAsset domain.Asset, caller domain.Account) (*domain.Withdrawal, error)

	// Approve lets spender pull up to amount of asset from owner.
	Approve(ctx context.Context, asset domain.Asset, owner, spender domain.Account, amount uint64) error

	// BalanceOf returns the balance of account in asset.
	BalanceOf(ctx context.Context, asset domain.Asset, account domain.Account) (uint64, error)

	// Now returns the engine's current logical time.
	Now() time.Time
}

// CreateCampaignReq carries the parameters of a new campaign.
type CreateCampaignReq struct {
	Caller       domain.Account
	SaleAsset    domain.Asset
	PaymentAsset domain.Asset
	StartTime    time.Time
	EndTime      time.Time
	UnitPrice    uint64
	TotalSupply  uint64
	MinPurchase  uint64
	MaxPurchase  uint64
}

// PurchaseReq carries a buy order. AttachedValue is the native currency
// sent with the call and is only consulted for native-priced campaigns.
type PurchaseReq struct {
	Caller        domain.Account
	SaleAsset     domain.Asset
	Amount        uint64
	AttachedValue *uint64
}
