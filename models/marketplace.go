package models

import "github.com/shopspring/decimal"

type Marketplace struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Code     string `json:"code"`
	IsActive bool   `json:"is_active"`
}

// MarketplaceProduct is one product's listing on one marketplace.
type MarketplaceProduct struct {
	ID          int             `json:"id,omitempty"`
	Product     int             `json:"product,omitempty"`
	Marketplace int             `json:"marketplace"`
	ExternalID  string          `json:"external_id"`
	Price       decimal.Decimal `json:"price"`
	IsActive    bool            `json:"is_active"`
	SyncStatus  string          `json:"sync_status,omitempty"`
}
