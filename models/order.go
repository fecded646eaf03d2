package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "new"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

type Order struct {
	ID                   int             `json:"id"`
	ExternalID           string          `json:"external_id"`
	Number               string          `json:"number"`
	PostingNumber        string          `json:"posting_number"`
	Marketplace          int             `json:"marketplace"`
	MarketplaceName      string          `json:"marketplace_name,omitempty"`
	Status               OrderStatus     `json:"status"`
	OrderType            string          `json:"order_type"`
	TotalAmount          decimal.Decimal `json:"total_amount"`
	CreatedAt            time.Time       `json:"created_at"`
	CreatedAtMarketplace *time.Time      `json:"created_at_marketplace"`
	UpdatedAt            time.Time       `json:"updated_at"`
}
