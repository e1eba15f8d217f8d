package memory

import (
	"context"
	"errors"
	"slices"
	"sync"

	"launchpad/internal/core/domain"
	"launchpad/internal/core/port"
)

// ErrConflict is returned when a unit of work commits over a store that
// changed after it started.
var ErrConflict = errors.New("concurrent update")

// CampaignRepository implements port.CampaignRepository in process
// memory. Atomic stages writes and applies them on commit, so reads made
// by other callers while a unit of work runs never block.
type CampaignRepository struct {
	mu        sync.RWMutex
	version   uint64
	campaigns map[domain.Asset]domain.Campaign
	events    map[domain.Asset][]domain.Event
}

// NewCampaignRepository returns an empty repository.
func NewCampaignRepository() *CampaignRepository {
	return &CampaignRepository{
		campaigns: make(map[domain.Asset]domain.Campaign),
		events:    make(map[domain.Asset][]domain.Event),
	}
}

// Atomic runs fn against a staging view and commits its writes if fn
// succeeds.
func (r *CampaignRepository) Atomic(ctx context.Context, fn func(repo port.CampaignRepository) error) error {
	r.mu.RLock()
	tx := &txRepository{
		base:      r,
		version:   r.version,
		campaigns: make(map[domain.Asset]domain.Campaign),
	}
	r.mu.RUnlock()

	if err := fn(tx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.commit(tx)
}

func (r *CampaignRepository) commit(tx *txRepository) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.version != tx.version {
		return ErrConflict
	}
	if len(tx.campaigns) == 0 && len(tx.events) == 0 {
		return nil
	}
	for k, c := range tx.campaigns {
		r.campaigns[k] = c
	}
	for _, ev := range tx.events {
		r.events[ev.SaleAsset] = append(r.events[ev.SaleAsset], ev)
	}
	r.version++
	return nil
}

// GetCampaign returns a copy of the stored campaign or nil.
func (r *CampaignRepository) GetCampaign(_ context.Context, saleAsset domain.Asset) (*domain.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.campaigns[saleAsset]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// SaveCampaign stores c outside of any unit of work.
func (r *CampaignRepository) SaveCampaign(_ context.Context, c *domain.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.campaigns[c.SaleAsset] = *c
	r.version++
	return nil
}

// AppendEvent records ev outside of any unit of work.
func (r *CampaignRepository) AppendEvent(_ context.Context, ev domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events[ev.SaleAsset] = append(r.events[ev.SaleAsset], ev)
	r.version++
	return nil
}

// ListEvents returns the committed events for saleAsset.
func (r *CampaignRepository) ListEvents(_ context.Context, saleAsset domain.Asset) ([]domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.events[saleAsset]), nil
}

// txRepository is the staging view handed to Atomic callbacks.
type txRepository struct {
	base      *CampaignRepository
	version   uint64
	campaigns map[domain.Asset]domain.Campaign
	events    []domain.Event
}

func (t *txRepository) Atomic(_ context.Context, fn func(repo port.CampaignRepository) error) error {
	return fn(t)
}

func (t *txRepository) GetCampaign(ctx context.Context, saleAsset domain.Asset) (*domain.Campaign, error) {
	if c, ok := t.campaigns[saleAsset]; ok {
		return &c, nil
	}
	return t.base.GetCampaign(ctx, saleAsset)
}

func (t *txRepository) SaveCampaign(_ context.Context, c *domain.Campaign) error {
	t.campaigns[c.SaleAsset] = *c
	return nil
}

func (t *txRepository) AppendEvent(_ context.Context, ev domain.Event) error {
	t.events = append(t.events, ev)
	return nil
}

func (t *txRepository) ListEvents(ctx context.Context, saleAsset domain.Asset) ([]domain.Event, error) {
	events, err := t.base.ListEvents(ctx, saleAsset)
	if err != nil {
		return nil, err
	}
	for _, ev := range t.events {
		if ev.SaleAsset == saleAsset {
			events = append(events, ev)
		}
	}
	return events, nil
}
