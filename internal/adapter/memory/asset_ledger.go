package memory

import (
	"context"
	"fmt"
	"math/bits"
	"sync"

	"launchpad/internal/core/domain"
)

// TransferHook is called before a transfer is applied, with the context
// the engine passed in. Returning an error fails the transfer. Tests use
// it to simulate failing or re-entrant asset implementations.
type TransferHook func(ctx context.Context, asset domain.Asset, from, to domain.Account, amount uint64) error

type holding struct {
	asset   domain.Asset
	account domain.Account
}

type allowance struct {
	asset   domain.Asset
	owner   domain.Account
	spender domain.Account
}

// AssetLedger is an in-process fungible asset ledger implementing
// port.AssetLedger. Each call is atomic; hooks run outside the lock.
type AssetLedger struct {
	mu         sync.Mutex
	balances   map[holding]uint64
	allowances map[allowance]uint64
	hook       TransferHook
}

// NewAssetLedger returns an empty ledger.
func NewAssetLedger() *AssetLedger {
	return &AssetLedger{
		balances:   make(map[holding]uint64),
		allowances: make(map[allowance]uint64),
	}
}

// SetHook installs h for all subsequent transfers. Nil removes it.
func (l *AssetLedger) SetHook(h TransferHook) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.hook = h
}

// Mint credits amount of asset to account.
func (l *AssetLedger) Mint(_ context.Context, asset domain.Asset, account domain.Account, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	k := holding{asset, account}
	sum, carry := bits.Add64(l.balances[k], amount, 0)
	if carry != 0 {
		return domain.ErrArithmeticOverflow
	}
	l.balances[k] = sum
	return nil
}

func (l *AssetLedger) Transfer(ctx context.Context, asset domain.Asset, from, to domain.Account, amount uint64) error {
	if err := l.runHook(ctx, asset, from, to, amount); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.move(asset, from, to, amount)
}

func (l *AssetLedger) TransferFrom(ctx context.Context, asset domain.Asset, spender, owner, recipient domain.Account, amount uint64) error {
	if err := l.runHook(ctx, asset, owner, recipient, amount); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	a := allowance{asset, owner, spender}
	if l.allowances[a] < amount {
		return fmt.Errorf("allowance of %s over %s %s: %w", spender, owner, asset, domain.ErrInsufficientFunds)
	}
	if err := l.move(asset, owner, recipient, amount); err != nil {
		return err
	}
	l.allowances[a] -= amount
	return nil
}

func (l *AssetLedger) RefundFrom(ctx context.Context, asset domain.Asset, spender, owner, holder domain.Account, amount uint64) error {
	if err := l.runHook(ctx, asset, holder, owner, amount); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	a := allowance{asset, owner, spender}
	restored, carry := bits.Add64(l.allowances[a], amount, 0)
	if carry != 0 {
		return domain.ErrArithmeticOverflow
	}
	if err := l.move(asset, holder, owner, amount); err != nil {
		return err
	}
	l.allowances[a] = restored
	return nil
}

func (l *AssetLedger) Approve(_ context.Context, asset domain.Asset, owner, spender domain.Account, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.allowances[allowance{asset, owner, spender}] = amount
	return nil
}

func (l *AssetLedger) BalanceOf(_ context.Context, asset domain.Asset, account domain.Account) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[holding{asset, account}], nil
}

// Allowance returns what spender may still pull from owner.
func (l *AssetLedger) Allowance(asset domain.Asset, owner, spender domain.Account) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.allowances[allowance{asset, owner, spender}]
}

func (l *AssetLedger) runHook(ctx context.Context, asset domain.Asset, from, to domain.Account, amount uint64) error {
	l.mu.Lock()
	h := l.hook
	l.mu.Unlock()
	if h == nil {
		return nil
	}
	return h(ctx, asset, from, to, amount)
}

// move must be called with mu held.
func (l *AssetLedger) move(asset domain.Asset, from, to domain.Account, amount uint64) error {
	src, dst := holding{asset, from}, holding{asset, to}
	if l.balances[src] < amount {
		return fmt.Errorf("balance of %s in %s: %w", from, asset, domain.ErrInsufficientFunds)
	}
	if from == to {
		return nil
	}
	sum, carry := bits.Add64(l.balances[dst], amount, 0)
	if carry != 0 {
		return domain.ErrArithmeticOverflow
	}
	l.balances[src] -= amount
	l.balances[dst] = sum
	return nil
}
