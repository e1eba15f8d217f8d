package port

import (
	"context"

	"launchpad/internal/core/domain"
)

// AssetLedger is the external fungible-asset transfer capability. The
// engine treats every call as a point where control may re-enter it, so
// implementations receive the caller's context unchanged.
type AssetLedger interface {
	// Transfer moves amount of asset from one account to another.
	Transfer(ctx context.Context, asset domain.Asset, from, to domain.Account, amount uint64) error
	// TransferFrom moves amount of asset from owner to recipient using
	// the allowance owner granted spender.
	TransferFrom(ctx context.Context, asset domain.Asset, spender, owner, recipient domain.Account, amount uint64) error
	// RefundFrom reverses a TransferFrom: amount moves from holder back to
	// owner and spender's allowance over owner grows by amount, atomically.
	RefundFrom(ctx context.Context, asset domain.Asset, spender, owner, holder domain.Account, amount uint64) error
	// Approve sets the allowance of spender over owner's asset.
	Approve(ctx context.Context, asset domain.Asset, owner, spender domain.Account, amount uint64) error
	// BalanceOf returns the balance of account in asset.
	BalanceOf(ctx context.Context, asset domain.Asset, account domain.Account) (uint64, error)
}
