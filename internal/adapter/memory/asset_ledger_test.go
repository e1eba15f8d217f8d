package memory

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"launchpad/internal/core/domain"
)

func TestTransfer(t *testing.T) {
	ctx := context.Background()
	l := NewAssetLedger()
	require.NoError(t, l.Mint(ctx, "X", "a", 100))

	require.NoError(t, l.Transfer(ctx, "X", "a", "b", 40))
	a, _ := l.BalanceOf(ctx, "X", "a")
	b, _ := l.BalanceOf(ctx, "X", "b")
	assert.Equal(t, uint64(60), a)
	assert.Equal(t, uint64(40), b)

	err := l.Transfer(ctx, "X", "a", "b", 61)
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)
	a, _ = l.BalanceOf(ctx, "X", "a")
	assert.Equal(t, uint64(60), a)
}

func TestTransferFromConsumesAllowance(t *testing.T) {
	ctx := context.Background()
	l := NewAssetLedger()
	require.NoError(t, l.Mint(ctx, "X", "owner", 100))
	require.NoError(t, l.Approve(ctx, "X", "owner", "spender", 50))

	require.NoError(t, l.TransferFrom(ctx, "X", "spender", "owner", "dest", 30))
	assert.Equal(t, uint64(20), l.Allowance("X", "owner", "spender"))

	err := l.TransferFrom(ctx, "X", "spender", "owner", "dest", 21)
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)

	dest, _ := l.BalanceOf(ctx, "X", "dest")
	assert.Equal(t, uint64(30), dest)
}

func TestTransferFromWithoutBalanceKeepsAllowance(t *testing.T) {
	ctx := context.Background()
	l := NewAssetLedger()
	require.NoError(t, l.Approve(ctx, "X", "owner", "spender", 50))

	err := l.TransferFrom(ctx, "X", "spender", "owner", "dest", 10)
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, uint64(50), l.Allowance("X", "owner", "spender"))
}

func TestHookCanFailTransfer(t *testing.T) {
	ctx := context.Background()
	l := NewAssetLedger()
	require.NoError(t, l.Mint(ctx, "X", "a", 100))
	frozen := errors.New("frozen")
	l.SetHook(func(context.Context, domain.Asset, domain.Account, domain.Account, uint64) error {
		return frozen
	})

	require.ErrorIs(t, l.Transfer(ctx, "X", "a", "b", 1), frozen)
	l.SetHook(nil)
	require.NoError(t, l.Transfer(ctx, "X", "a", "b", 1))
}

func TestMintOverflow(t *testing.T) {
	ctx := context.Background()
	l := NewAssetLedger()
	require.NoError(t, l.Mint(ctx, "X", "a", math.MaxUint64))
	require.ErrorIs(t, l.Mint(ctx, "X", "a", 1), domain.ErrArithmeticOverflow)
}

func TestRefundFromRestoresAllowance(t *testing.T) {
	ctx := context.Background()
	l := NewAssetLedger()
	require.NoError(t, l.Mint(ctx, "X", "owner", 100))
	require.NoError(t, l.Approve(ctx, "X", "owner", "spender", 50))
	require.NoError(t, l.TransferFrom(ctx, "X", "spender", "owner", "spender", 30))

	require.NoError(t, l.RefundFrom(ctx, "X", "spender", "owner", "spender", 30))
	owner, _ := l.BalanceOf(ctx, "X", "owner")
	held, _ := l.BalanceOf(ctx, "X", "spender")
	assert.Equal(t, uint64(100), owner)
	assert.Zero(t, held)
	assert.Equal(t, uint64(50), l.Allowance("X", "owner", "spender"))

	// nothing left to give back
	err := l.RefundFrom(ctx, "X", "spender", "owner", "spender", 1)
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, uint64(50), l.Allowance("X", "owner", "spender"))
}
