package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          int             `json:"id"`
	Article     string          `json:"article"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    *int            `json:"category"`
	Country     *int            `json:"country"`
	Direction   *int            `json:"direction"`
	IsActive    bool            `json:"is_active"`
	Images      []ProductImage  `json:"images"`
	Marketplace []MarketplaceProduct `json:"marketplace_products,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type ProductImage struct {
	ID      int    `json:"id"`
	Image   string `json:"image"`
	IsMain  bool   `json:"is_main"`
	Product int    `json:"product,omitempty"`
}

type Category struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

// FilterOptions feeds the product form selects.
type FilterOptions struct {
	Countries  []FilterOption `json:"countries"`
	Directions []FilterOption `json:"directions"`
	Categories []FilterOption `json:"categories"`
}

type FilterOption struct {
	ID   int    `json:"id"`
	Code string `json:"code,omitempty"`
	Name string `json:"name"`
}
