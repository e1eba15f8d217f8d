package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"launchpad/internal/core/domain"
	"launchpad/internal/core/port"
)

const campaignColumns = `sale_asset, payment_asset, admin, start_time, end_time, unit_price,
        total_supply, sold, min_purchase, max_purchase, escrow_balance, proceeds,
        created_at, updated_at`

// CampaignRepository implements port.CampaignRepository using pgxpool for PostgreSQL.
type CampaignRepository struct {
	pool *pgxpool.Pool
	q    querier
	inTx bool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool, q: pool}
}

// Atomic runs fn inside a serializable transaction. The transaction is
// committed when fn returns nil and rolled back otherwise.
func (r *CampaignRepository) Atomic(ctx context.Context, fn func(repo port.CampaignRepository) error) (err error) {
	if r.inTx {
		return fn(r)
	}
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
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
	err = fn(&CampaignRepository{pool: r.pool, q: tx, inTx: true})
	return err
}

// GetCampaign returns the campaign keyed by saleAsset. Within a
// transaction the row is locked for update.
func (r *CampaignRepository) GetCampaign(ctx context.Context, saleAsset domain.Asset) (*domain.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE sale_asset = $1`
	if r.inTx {
		query += ` FOR UPDATE`
	}
	c, err := scanCampaign(r.q.QueryRow(ctx, query, string(saleAsset)))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// SaveCampaign upserts c keyed by its sale asset.
func (r *CampaignRepository) SaveCampaign(ctx context.Context, c *domain.Campaign) error {
	_, err := r.q.Exec(ctx, `INSERT INTO campaigns (`+campaignColumns+`)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
ON CONFLICT (sale_asset) DO UPDATE SET
    payment_asset = EXCLUDED.payment_asset,
    admin = EXCLUDED.admin,
    start_time = EXCLUDED.start_time,
    end_time = EXCLUDED.end_time,
    unit_price = EXCLUDED.unit_price,
    total_supply = EXCLUDED.total_supply,
    sold = EXCLUDED.sold,
    min_purchase = EXCLUDED.min_purchase,
    max_purchase = EXCLUDED.max_purchase,
    escrow_balance = EXCLUDED.escrow_balance,
    proceeds = EXCLUDED.proceeds,
    created_at = EXCLUDED.created_at,
    updated_at = EXCLUDED.updated_at`,
		string(c.SaleAsset), string(c.PaymentAsset), string(c.Admin), c.StartTime, c.EndTime,
		toNumeric(c.UnitPrice), toNumeric(c.TotalSupply), toNumeric(c.Sold),
		toNumeric(c.MinPurchase), toNumeric(c.MaxPurchase),
		toNumeric(c.EscrowBalance), toNumeric(c.Proceeds),
		c.CreatedAt, c.UpdatedAt)
	return err
}

// AppendEvent inserts ev into the campaign_events outbox.
func (r *CampaignRepository) AppendEvent(ctx context.Context, ev domain.Event) error {
	payload, err := json.Marshal(ev.Payload)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", ev.Type, err)
	}
	_, err = r.q.Exec(ctx, `INSERT INTO campaign_events (id, type, sale_asset, payload, occurred_at) VALUES ($1,$2,$3,$4,$5)`,
		ev.ID, string(ev.Type), string(ev.SaleAsset), payload, ev.OccurredAt)
	return err
}

// ListEvents returns the events recorded for saleAsset, oldest first.
func (r *CampaignRepository) ListEvents(ctx context.Context, saleAsset domain.Asset) ([]domain.Event, error) {
	rows, err := r.q.Query(ctx, `SELECT id, type, sale_asset, payload, occurred_at FROM campaign_events WHERE sale_asset = $1 ORDER BY occurred_at, seq`, string(saleAsset))
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Event, error) {
		var (
			ev      domain.Event
			typ     string
			asset   string
			payload []byte
		)
		if err := row.Scan(&ev.ID, &typ, &asset, &payload, &ev.OccurredAt); err != nil {
			return ev, err
		}
		ev.Type = domain.EventType(typ)
		ev.SaleAsset = domain.Asset(asset)
		decoded, err := decodePayload(ev.Type, payload)
		if err != nil {
			return ev, err
		}
		ev.Payload = decoded
		return ev, nil
	})
}

func decodePayload(typ domain.EventType, raw []byte) (any, error) {
	switch typ {
	case domain.EventCampaignCreated:
		var p domain.CampaignCreated
		err := json.Unmarshal(raw, &p)
		return p, err
	case domain.EventTokensPurchased:
		var p domain.TokensPurchased
		err := json.Unmarshal(raw, &p)
		return p, err
	case domain.EventCampaignWithdrawn:
		var p domain.CampaignWithdrawn
		err := json.Unmarshal(raw, &p)
		return p, err
	default:
		return json.RawMessage(raw), nil
	}
}

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var (
		c                                      domain.Campaign
		saleAsset, paymentAsset, admin         string
		price, total, sold, minP, maxP, escrow decimal.Decimal
		proceeds                               decimal.Decimal
	)
	err := row.Scan(&saleAsset, &paymentAsset, &admin, &c.StartTime, &c.EndTime, &price,
		&total, &sold, &minP, &maxP, &escrow, &proceeds, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.SaleAsset = domain.Asset(saleAsset)
	c.PaymentAsset = domain.Asset(paymentAsset)
	c.Admin = domain.Account(admin)

	for _, f := range []struct {
		dst *uint64
		src decimal.Decimal
	}{
		{&c.UnitPrice, price},
		{&c.TotalSupply, total},
		{&c.Sold, sold},
		{&c.MinPurchase, minP},
		{&c.MaxPurchase, maxP},
		{&c.EscrowBalance, escrow},
		{&c.Proceeds, proceeds},
	} {
		if *f.dst, err = fromNumeric(f.src); err != nil {
			return nil, fmt.Errorf("campaign %s: %w", saleAsset, err)
		}
	}
	return &c, nil
}
