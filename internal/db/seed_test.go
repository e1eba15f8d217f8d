package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"launchpad/internal/adapter/memory"
)

func TestSeed(t *testing.T) {
	ctx := context.Background()
	ledger := memory.NewAssetLedger()
	require.NoError(t, Seed(ctx, ledger))

	for asset, amount := range DemoAssets {
		for _, acc := range DemoAccounts {
			bal, err := ledger.BalanceOf(ctx, asset, acc)
			require.NoError(t, err)
			assert.Equal(t, amount, bal)
		}
	}
}
