package domain

import "time"

// Phase is the position of a campaign relative to its sale window.
type Phase string

const (
	PhasePending Phase = "pending"
	PhaseOpen    Phase = "open"
	PhaseClosed  Phase = "closed"
)

// Campaign represents one token sale keyed by its sale asset.
// Amounts are stored in integer base units of the respective asset.
type Campaign struct {
	SaleAsset    Asset
	PaymentAsset Asset
	Admin        Account
	StartTime    time.Time
	EndTime      time.Time
	UnitPrice    uint64 // payment units per sale unit
	TotalSupply  uint64
	Sold         uint64
	MinPurchase  uint64
	MaxPurchase  uint64

	// EscrowBalance is the unsold sale asset held for this campaign and
	// Proceeds the payment asset collected by it. Withdraw sweeps both.
	EscrowBalance uint64
	Proceeds      uint64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Phase reports the sale phase at now. The window is inclusive on both ends.
func (c *Campaign) Phase(now time.Time) Phase {
	switch {
	case now.Before(c.StartTime):
		return PhasePending
	case now.After(c.EndTime):
		return PhaseClosed
	default:
		return PhaseOpen
	}
}

// Remaining returns the units still available for sale.
func (c *Campaign) Remaining() uint64 {
	return c.TotalSupply - c.Sold
}

// Unresolved reports whether the campaign still holds anything in escrow.
func (c *Campaign) Unresolved() bool {
	return c.EscrowBalance > 0 || c.Proceeds > 0
}
