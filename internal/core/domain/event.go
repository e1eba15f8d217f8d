package domain

import (
	"time"
)

// EventType names an observation emitted for external indexing.
type EventType string

const (
	EventCampaignCreated   EventType = "campaign_created"
	EventTokensPurchased   EventType = "tokens_purchased"
	EventCampaignWithdrawn EventType = "campaign_withdrawn"
)

// Event is an observation recorded alongside the state change it
// describes. Payload is one of the typed structs below.
type Event struct {
	ID         string
	Type       EventType
	SaleAsset  Asset
	Payload    any
	OccurredAt time.Time
}

// CampaignCreated is emitted once a campaign is stored and funded.
type CampaignCreated struct {
	SaleAsset Asset     `json:"sale_asset"`
	Admin     Account   `json:"admin"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

// TokensPurchased is emitted after a settled purchase.
type TokensPurchased struct {
	Buyer     Account `json:"buyer"`
	SaleAsset Asset   `json:"sale_asset"`
	Amount    uint64  `json:"amount"`
	Cost      uint64  `json:"cost"`
}

// CampaignWithdrawn is emitted when a withdrawal moves a non-zero amount.
type CampaignWithdrawn struct {
	SaleAsset  Asset   `json:"sale_asset"`
	Admin      Account `json:"admin"`
	SaleAmount uint64  `json:"sale_amount"`
	Proceeds   uint64  `json:"proceeds"`
}
