package usecase

import (
	"context"
	"errors"
	"fmt"

	"launchpad/internal/core/domain"
	"launchpad/internal/core/port"
)

// leg is one completed transfer. spender is set when the leg was pulled
// through an allowance, which must be restored on reversal.
type leg struct {
	asset   domain.Asset
	spender domain.Account
	from    domain.Account
	to      domain.Account
	amount  uint64
}

// journal records the transfers an operation has completed so they can
// be reversed when a later step fails.
type journal struct {
	ledger port.AssetLedger
	legs   []leg
}

func newJournal(ledger port.AssetLedger) *journal {
	return &journal{ledger: ledger}
}

// transfer moves amount from one account to another. Zero amounts are skipped.
func (j *journal) transfer(ctx context.Context, asset domain.Asset, from, to domain.Account, amount uint64) error {
	if amount == 0 {
		return nil
	}
	if err := j.ledger.Transfer(ctx, asset, from, to, amount); err != nil {
		return err
	}
	j.legs = append(j.legs, leg{asset: asset, from: from, to: to, amount: amount})
	return nil
}

// pull moves amount from owner into escrow using the allowance owner
// granted to the escrow account.
func (j *journal) pull(ctx context.Context, asset domain.Asset, owner, escrow domain.Account, amount uint64) error {
	if amount == 0 {
		return nil
	}
	if err := j.ledger.TransferFrom(ctx, asset, escrow, owner, escrow, amount); err != nil {
		return err
	}
	j.legs = append(j.legs, leg{asset: asset, spender: escrow, from: owner, to: escrow, amount: amount})
	return nil
}

// revert reverses every recorded leg, newest first, and empties the
// journal. Pulled legs give back the allowance they consumed.
func (j *journal) revert(ctx context.Context) error {
	var errs []error
	for i := len(j.legs) - 1; i >= 0; i-- {
		l := j.legs[i]
		var err error
		if l.spender != "" {
			err = j.ledger.RefundFrom(ctx, l.asset, l.spender, l.from, l.to, l.amount)
		} else {
			err = j.ledger.Transfer(ctx, l.asset, l.to, l.from, l.amount)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("reverse %d %s %s->%s: %w", l.amount, l.asset, l.from, l.to, err))
		}
	}
	j.legs = nil
	return errors.Join(errs...)
}
