package postgres

import (
	"context"
	"errors"
	"fmt"
	"math/bits"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"launchpad/internal/core/domain"
)

// AssetLedger implements port.AssetLedger over the asset_balances and
// asset_allowances tables. Every call runs in its own serializable
// transaction and locks the rows it reads.
type AssetLedger struct {
	pool *pgxpool.Pool
}

// NewAssetLedger returns a new ledger instance.
func NewAssetLedger(pool *pgxpool.Pool) *AssetLedger {
	return &AssetLedger{pool: pool}
}

// Transfer moves amount of asset between two accounts.
func (l *AssetLedger) Transfer(ctx context.Context, asset domain.Asset, from, to domain.Account, amount uint64) error {
	return l.inTx(ctx, func(tx pgx.Tx) error {
		return move(ctx, tx, asset, from, to, amount)
	})
}

// TransferFrom moves amount of asset from owner to recipient and
// decrements the allowance owner granted spender.
func (l *AssetLedger) TransferFrom(ctx context.Context, asset domain.Asset, spender, owner, recipient domain.Account, amount uint64) error {
	return l.inTx(ctx, func(tx pgx.Tx) error {
		allowed, err := allowanceOf(ctx, tx, asset, owner, spender)
		if err != nil {
			return err
		}
		if allowed < amount {
			return fmt.Errorf("allowance of %s over %s %s: %w", spender, owner, asset, domain.ErrInsufficientFunds)
		}
		if err = move(ctx, tx, asset, owner, recipient, amount); err != nil {
			return err
		}
		return setAllowance(ctx, tx, asset, owner, spender, allowed-amount)
	})
}

// RefundFrom moves amount back from holder to owner and restores the
// allowance owner granted spender by the same amount.
func (l *AssetLedger) RefundFrom(ctx context.Context, asset domain.Asset, spender, owner, holder domain.Account, amount uint64) error {
	return l.inTx(ctx, func(tx pgx.Tx) error {
		allowed, err := allowanceOf(ctx, tx, asset, owner, spender)
		if err != nil {
			return err
		}
		restored, carry := bits.Add64(allowed, amount, 0)
		if carry != 0 {
			return domain.ErrArithmeticOverflow
		}
		if err = move(ctx, tx, asset, holder, owner, amount); err != nil {
			return err
		}
		return setAllowance(ctx, tx, asset, owner, spender, restored)
	})
}

// Approve sets spender's allowance over owner's asset.
func (l *AssetLedger) Approve(ctx context.Context, asset domain.Asset, owner, spender domain.Account, amount uint64) error {
	return setAllowance(ctx, l.pool, asset, owner, spender, amount)
}

// BalanceOf returns account's balance in asset. Unknown holdings are zero.
func (l *AssetLedger) BalanceOf(ctx context.Context, asset domain.Asset, account domain.Account) (uint64, error) {
	return balance(ctx, l.pool, asset, account, false)
}

// Mint credits amount of asset to account.
func (l *AssetLedger) Mint(ctx context.Context, asset domain.Asset, account domain.Account, amount uint64) error {
	return l.inTx(ctx, func(tx pgx.Tx) error {
		current, err := balance(ctx, tx, asset, account, true)
		if err != nil {
			return err
		}
		sum, carry := bits.Add64(current, amount, 0)
		if carry != 0 {
			return domain.ErrArithmeticOverflow
		}
		return setBalance(ctx, tx, asset, account, sum)
	})
}

func (l *AssetLedger) inTx(ctx context.Context, fn func(tx pgx.Tx) error) (err error) {
	tx, err := l.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()
	err = fn(tx)
	return err
}

func move(ctx context.Context, tx pgx.Tx, asset domain.Asset, from, to domain.Account, amount uint64) error {
	src, err := balance(ctx, tx, asset, from, true)
	if err != nil {
		return err
	}
	if src < amount {
		return fmt.Errorf("balance of %s in %s: %w", from, asset, domain.ErrInsufficientFunds)
	}
	if from == to || amount == 0 {
		return nil
	}
	dst, err := balance(ctx, tx, asset, to, true)
	if err != nil {
		return err
	}
	sum, carry := bits.Add64(dst, amount, 0)
	if carry != 0 {
		return domain.ErrArithmeticOverflow
	}
	if err = setBalance(ctx, tx, asset, from, src-amount); err != nil {
		return err
	}
	return setBalance(ctx, tx, asset, to, sum)
}

func balance(ctx context.Context, q querier, asset domain.Asset, account domain.Account, lock bool) (uint64, error) {
	query := `SELECT amount FROM asset_balances WHERE asset = $1 AND account = $2`
	if lock {
		query += ` FOR UPDATE`
	}
	var raw decimal.Decimal
	err := q.QueryRow(ctx, query, string(asset), string(account)).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return fromNumeric(raw)
}

func setBalance(ctx context.Context, q querier, asset domain.Asset, account domain.Account, amount uint64) error {
	_, err := q.Exec(ctx, `INSERT INTO asset_balances (asset, account, amount) VALUES ($1,$2,$3)
ON CONFLICT (asset, account) DO UPDATE SET amount = EXCLUDED.amount`,
		string(asset), string(account), toNumeric(amount))
	return err
}

// allowanceOf locks and returns what spender may pull from owner.
func allowanceOf(ctx context.Context, tx pgx.Tx, asset domain.Asset, owner, spender domain.Account) (uint64, error) {
	var raw decimal.Decimal
	err := tx.QueryRow(ctx, `SELECT amount FROM asset_allowances WHERE asset = $1 AND owner = $2 AND spender = $3 FOR UPDATE`,
		string(asset), string(owner), string(spender)).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return fromNumeric(raw)
}

func setAllowance(ctx context.Context, q querier, asset domain.Asset, owner, spender domain.Account, amount uint64) error {
	_, err := q.Exec(ctx, `INSERT INTO asset_allowances (asset, owner, spender, amount) VALUES ($1,$2,$3,$4)
ON CONFLICT (asset, owner, spender) DO UPDATE SET amount = EXCLUDED.amount`,
		string(asset), string(owner), string(spender), toNumeric(amount))
	return err
}
