package domain

import "time"

// Receipt is returned by a successful purchase.
type Receipt struct {
	ID           string
	Buyer        Account
	SaleAsset    Asset
	PaymentAsset Asset
	Amount       uint64
	Cost         uint64
	PurchasedAt  time.Time
}

// Withdrawal summarises what a withdraw call moved to the admin.
type Withdrawal struct {
	SaleAsset    Asset
	PaymentAsset Asset
	Admin        Account
	SaleAmount   uint64
	Proceeds     uint64
}

// Empty reports whether nothing was swept.
func (w Withdrawal) Empty() bool {
	return w.SaleAmount == 0 && w.Proceeds == 0
}
