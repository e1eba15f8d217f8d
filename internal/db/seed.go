package db

import (
	"context"
	"fmt"

	"launchpad/internal/core/domain"
)

// Minter credits balances on an asset ledger.
type Minter interface {
	Mint(ctx context.Context, asset domain.Asset, account domain.Account, amount uint64) error
}

// DemoAccounts are funded by Seed.
var DemoAccounts = []domain.Account{"alice", "bob", "carol"}

// DemoAssets lists the assets Seed mints with the amount each demo
// account receives.
var DemoAssets = map[domain.Asset]uint64{
	domain.NativeAsset: 1_000_000_000,
	"USDC":             10_000_000,
	"DEMO":             5_000_000,
}

// Seed funds the demo accounts so campaigns can be created and bought
// into without external tooling.
func Seed(ctx context.Context, ledger Minter) error {
	for asset, amount := range DemoAssets {
		for _, account := range DemoAccounts {
			if err := ledger.Mint(ctx, asset, account, amount); err != nil {
				return fmt.Errorf("mint %s to %s: %w", asset, account, err)
			}
		}
	}
	return nil
}
