package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"launchpad/internal/core/domain"
	"launchpad/internal/core/port"
)

const (
	// DefaultEscrowAccount is the custody account used when none is configured.
	DefaultEscrowAccount domain.Account = "launchpad-escrow"
	// DefaultLockTimeout bounds the wait for the settlement guard.
	DefaultLockTimeout = 5 * time.Second
)

// LaunchpadUseCase is the settlement engine. It validates purchases
// against the campaign registry and orchestrates the asset exchange.
// Every mutating operation runs under one process-wide guard and inside a
// single repository unit of work.
type LaunchpadUseCase struct {
	repo      port.CampaignRepository
	ledger    port.AssetLedger
	auth      port.Authorizer
	publisher port.EventPublisher
	clock     port.Clock
	logger    *slog.Logger

	escrow domain.Account
	guard  *guard
}

// Option configures a LaunchpadUseCase.
type Option func(*LaunchpadUseCase)

// WithAuthorizer restricts who may open campaigns. Without it anyone may.
func WithAuthorizer(a port.Authorizer) Option {
	return func(u *LaunchpadUseCase) { u.auth = a }
}

// WithPublisher sets where committed events are delivered.
func WithPublisher(p port.EventPublisher) Option {
	return func(u *LaunchpadUseCase) { u.publisher = p }
}

func WithClock(c port.Clock) Option {
	return func(u *LaunchpadUseCase) { u.clock = c }
}

func WithLogger(l *slog.Logger) Option {
	return func(u *LaunchpadUseCase) { u.logger = l }
}

// WithEscrowAccount sets the account that custodies sale assets and proceeds.
func WithEscrowAccount(a domain.Account) Option {
	return func(u *LaunchpadUseCase) { u.escrow = a }
}

// WithLockTimeout bounds how long an operation waits for the guard.
// Zero waits until the caller's context is done. Defaults to
// DefaultLockTimeout.
func WithLockTimeout(d time.Duration) Option {
	return func(u *LaunchpadUseCase) { u.guard = newGuard(d) }
}

// NewLaunchpadUseCase creates the engine over the given registry and
// asset ledger.
func NewLaunchpadUseCase(repo port.CampaignRepository, ledger port.AssetLedger, opts ...Option) *LaunchpadUseCase {
	u := &LaunchpadUseCase{
		repo:      repo,
		ledger:    ledger,
		auth:      openAuthorizer{},
		publisher: noopPublisher{},
		clock:     systemClock{},
		logger:    slog.Default(),
		escrow:    DefaultEscrowAccount,
		guard:     newGuard(DefaultLockTimeout),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Now returns the engine's current logical time.
func (u *LaunchpadUseCase) Now() time.Time {
	return u.clock.Now()
}

// EscrowAccount returns the custody account.
func (u *LaunchpadUseCase) EscrowAccount() domain.Account {
	return u.escrow
}

// CreateCampaign validates the window and purchase bounds, escrows the
// total supply from the caller and stores the campaign. A campaign that
// still holds escrow or proceeds cannot be replaced.
func (u *LaunchpadUseCase) CreateCampaign(ctx context.Context, req port.CreateCampaignReq) (*domain.Campaign, error) {
	if req.Caller == u.escrow {
		return nil, fmt.Errorf("create campaign %s: %w", req.SaleAsset, domain.ErrEscrowCaller)
	}
	if !u.auth.CanCreateCampaign(ctx, req.Caller) {
		return nil, fmt.Errorf("create campaign %s: %w", req.SaleAsset, domain.ErrNotAuthorized)
	}
	now := u.clock.Now()
	if err := validateCampaign(req, now); err != nil {
		return nil, fmt.Errorf("create campaign %s: %w", req.SaleAsset, err)
	}

	ctx, release, err := u.guard.enter(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	var (
		created *domain.Campaign
		ev      domain.Event
		j       = newJournal(u.ledger)
	)
	err = u.repo.Atomic(ctx, func(repo port.CampaignRepository) error {
		prev, err := repo.GetCampaign(ctx, req.SaleAsset)
		if err != nil {
			return err
		}
		if prev != nil && prev.Unresolved() {
			return domain.ErrCampaignExists
		}

		c := &domain.Campaign{
			SaleAsset:     req.SaleAsset,
			PaymentAsset:  req.PaymentAsset,
			Admin:         req.Caller,
			StartTime:     req.StartTime,
			EndTime:       req.EndTime,
			UnitPrice:     req.UnitPrice,
			TotalSupply:   req.TotalSupply,
			MinPurchase:   req.MinPurchase,
			MaxPurchase:   req.MaxPurchase,
			EscrowBalance: req.TotalSupply,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err = j.pull(ctx, c.SaleAsset, c.Admin, u.escrow, c.TotalSupply); err != nil {
			return fmt.Errorf("%w: escrow %d %s: %w", domain.ErrAssetTransferFailed, c.TotalSupply, c.SaleAsset, err)
		}
		if err = repo.SaveCampaign(ctx, c); err != nil {
			return err
		}
		ev = newEvent(domain.EventCampaignCreated, c.SaleAsset, now, domain.CampaignCreated{
			SaleAsset: c.SaleAsset,
			Admin:     c.Admin,
			StartTime: c.StartTime,
			EndTime:   c.EndTime,
		})
		if err = repo.AppendEvent(ctx, ev); err != nil {
			return err
		}
		created = c
		return nil
	})
	if err != nil {
		u.compensate(ctx, j, "create campaign")
		return nil, fmt.Errorf("create campaign %s: %w", req.SaleAsset, err)
	}

	u.publisher.Publish(ctx, ev)
	return created, nil
}

// GetCampaign returns the stored campaign for saleAsset.
func (u *LaunchpadUseCase) GetCampaign(ctx context.Context, saleAsset domain.Asset) (*domain.Campaign, error) {
	c, err := u.repo.GetCampaign(ctx, saleAsset)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrCampaignNotFound
	}
	return c, nil
}

// Purchase sells amount units of the sale asset to the caller. Payment is
// collected first, then the sale asset is released from escrow; if either
// leg or the final commit fails, completed legs are reversed and no state
// changes.
func (u *LaunchpadUseCase) Purchase(ctx context.Context, req port.PurchaseReq) (*domain.Receipt, error) {
	if req.Caller == u.escrow {
		return nil, fmt.Errorf("purchase %s: %w", req.SaleAsset, domain.ErrEscrowCaller)
	}
	ctx, release, err := u.guard.enter(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	var (
		now     = u.clock.Now()
		receipt *domain.Receipt
		ev      domain.Event
		j       = newJournal(u.ledger)
	)
	err = u.repo.Atomic(ctx, func(repo port.CampaignRepository) error {
		c, err := repo.GetCampaign(ctx, req.SaleAsset)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.ErrCampaignNotFound
		}

		cost, err := checkPurchase(c, req.Amount, now)
		if err != nil {
			return err
		}
		proceeds, err := addChecked(c.Proceeds, cost)
		if err != nil {
			return err
		}

		if err = u.collect(ctx, j, c, req, cost); err != nil {
			return err
		}
		if err = j.transfer(ctx, c.SaleAsset, u.escrow, req.Caller, req.Amount); err != nil {
			return fmt.Errorf("%w: release %d %s: %w", domain.ErrPaymentFailed, req.Amount, c.SaleAsset, err)
		}

		c.Sold += req.Amount
		c.EscrowBalance -= req.Amount
		c.Proceeds = proceeds
		c.UpdatedAt = now
		if err = repo.SaveCampaign(ctx, c); err != nil {
			return err
		}

		receipt = &domain.Receipt{
			ID:           uuid.NewString(),
			Buyer:        req.Caller,
			SaleAsset:    c.SaleAsset,
			PaymentAsset: c.PaymentAsset,
			Amount:       req.Amount,
			Cost:         cost,
			PurchasedAt:  now,
		}
		ev = newEvent(domain.EventTokensPurchased, c.SaleAsset, now, domain.TokensPurchased{
			Buyer:     req.Caller,
			SaleAsset: c.SaleAsset,
			Amount:    req.Amount,
			Cost:      cost,
		})
		return repo.AppendEvent(ctx, ev)
	})
	if err != nil {
		u.compensate(ctx, j, "purchase")
		return nil, fmt.Errorf("purchase %s: %w", req.SaleAsset, err)
	}

	u.publisher.Publish(ctx, ev)
	return receipt, nil
}

// Withdraw sweeps the campaign's remaining escrow and its proceeds to the
// admin. The campaign record is kept with its sold count unchanged.
func (u *LaunchpadUseCase) Withdraw(ctx context.Context, saleAsset domain.Asset, caller domain.Account) (*domain.Withdrawal, error) {
	ctx, release, err := u.guard.enter(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	var (
		now = u.clock.Now()
		out *domain.Withdrawal
		ev  domain.Event
		j   = newJournal(u.ledger)
	)
	err = u.repo.Atomic(ctx, func(repo port.CampaignRepository) error {
		c, err := repo.GetCampaign(ctx, saleAsset)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.ErrCampaignNotFound
		}
		if caller != c.Admin {
			return domain.ErrNotAuthorized
		}

		w := &domain.Withdrawal{
			SaleAsset:    c.SaleAsset,
			PaymentAsset: c.PaymentAsset,
			Admin:        c.Admin,
			SaleAmount:   c.EscrowBalance,
			Proceeds:     c.Proceeds,
		}
		out = w
		if w.Empty() {
			return nil
		}

		if err = j.transfer(ctx, c.SaleAsset, u.escrow, c.Admin, w.SaleAmount); err != nil {
			return fmt.Errorf("%w: sweep %s: %w", domain.ErrAssetTransferFailed, c.SaleAsset, err)
		}
		if err = j.transfer(ctx, c.PaymentAsset, u.escrow, c.Admin, w.Proceeds); err != nil {
			return fmt.Errorf("%w: sweep %s: %w", domain.ErrAssetTransferFailed, c.PaymentAsset, err)
		}

		c.EscrowBalance = 0
		c.Proceeds = 0
		c.UpdatedAt = now
		if err = repo.SaveCampaign(ctx, c); err != nil {
			return err
		}
		ev = newEvent(domain.EventCampaignWithdrawn, c.SaleAsset, now, domain.CampaignWithdrawn{
			SaleAsset:  c.SaleAsset,
			Admin:      c.Admin,
			SaleAmount: w.SaleAmount,
			Proceeds:   w.Proceeds,
		})
		return repo.AppendEvent(ctx, ev)
	})
	if err != nil {
		u.compensate(ctx, j, "withdraw")
		return nil, fmt.Errorf("withdraw %s: %w", saleAsset, err)
	}

	if ev.ID != "" {
		u.publisher.Publish(ctx, ev)
	}
	return out, nil
}

// Approve grants spender an allowance over owner's asset. The escrow
// account's own holdings cannot be approved away.
func (u *LaunchpadUseCase) Approve(ctx context.Context, asset domain.Asset, owner, spender domain.Account, amount uint64) error {
	if owner == u.escrow {
		return fmt.Errorf("approve %s: %w", asset, domain.ErrEscrowCaller)
	}
	return u.ledger.Approve(ctx, asset, owner, spender, amount)
}

// BalanceOf returns account's balance in asset.
func (u *LaunchpadUseCase) BalanceOf(ctx context.Context, asset domain.Asset, account domain.Account) (uint64, error) {
	return u.ledger.BalanceOf(ctx, asset, account)
}

// collect takes cost of the payment asset from the buyer into escrow.
// Native payment must be attached in full; token payment is pulled using
// the buyer's allowance.
func (u *LaunchpadUseCase) collect(ctx context.Context, j *journal, c *domain.Campaign, req port.PurchaseReq, cost uint64) error {
	if c.PaymentAsset.IsNative() {
		if req.AttachedValue == nil || *req.AttachedValue != cost {
			return domain.ErrIncorrectPayment
		}
		if err := j.transfer(ctx, c.PaymentAsset, req.Caller, u.escrow, cost); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrPaymentFailed, err)
		}
		return nil
	}

	if req.AttachedValue != nil && *req.AttachedValue != 0 {
		return domain.ErrIncorrectPayment
	}
	if err := j.pull(ctx, c.PaymentAsset, req.Caller, u.escrow, cost); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrPaymentFailed, err)
	}
	return nil
}

// compensate reverses completed transfers after a failed operation.
func (u *LaunchpadUseCase) compensate(ctx context.Context, j *journal, op string) {
	if len(j.legs) == 0 {
		return
	}
	if err := j.revert(context.WithoutCancel(ctx)); err != nil {
		u.logger.Error("compensation failed", slog.String("operation", op), slog.Any("error", err))
		return
	}
	u.logger.Warn("operation rolled back", slog.String("operation", op))
}

// validateCampaign checks creation parameters against now.
func validateCampaign(req port.CreateCampaignReq, now time.Time) error {
	if !req.EndTime.After(req.StartTime) {
		return domain.ErrInvalidTimeRange
	}
	if !req.StartTime.After(now) {
		return domain.ErrInvalidStartTime
	}
	if req.MinPurchase > req.MaxPurchase {
		return domain.ErrInvalidPurchaseBounds
	}
	if req.TotalSupply == 0 {
		return domain.ErrInvalidSupply
	}
	return nil
}

// checkPurchase validates amount against c at now and returns its cost.
func checkPurchase(c *domain.Campaign, amount uint64, now time.Time) (uint64, error) {
	if c.Phase(now) != domain.PhaseOpen {
		return 0, domain.ErrSaleInactive
	}
	if amount < c.MinPurchase {
		return 0, domain.ErrBelowMinimum
	}
	if amount > c.MaxPurchase {
		return 0, domain.ErrAboveMaximum
	}
	if amount > c.Remaining() || amount > c.EscrowBalance {
		return 0, domain.ErrInsufficientTokens
	}
	return mulChecked(amount, c.UnitPrice)
}

func newEvent(typ domain.EventType, saleAsset domain.Asset, at time.Time, payload any) domain.Event {
	return domain.Event{
		ID:         uuid.NewString(),
		Type:       typ,
		SaleAsset:  saleAsset,
		Payload:    payload,
		OccurredAt: at,
	}
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

type openAuthorizer struct{}

func (openAuthorizer) CanCreateCampaign(context.Context, domain.Account) bool { return true }

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, domain.Event) {}
