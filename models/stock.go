package models

import "time"

type Stock struct {
	ID                int       `json:"id"`
	Product           int       `json:"product"`
	ProductArticle    string    `json:"product_article,omitempty"`
	ProductName       string    `json:"product_name,omitempty"`
	AvailableQuantity int       `json:"available_quantity"`
	ReservedWB        int       `json:"reserved_wb"`
	ReservedOzon      int       `json:"reserved_ozon"`
	ReservedYandex    int       `json:"reserved_yandex"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// BulkUpdateResult is the server's per-file import report.
type BulkUpdateResult struct {
	Updated []BulkUpdatedRow `json:"updated"`
	Errors  []string         `json:"errors"`
}

type BulkUpdatedRow struct {
	Article           string `json:"article"`
	AvailableQuantity int    `json:"available_quantity"`
	PreviousQuantity  int    `json:"previous_quantity"`
}

type Warehouse struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address,omitempty"`
	IsActive bool   `json:"is_active"`
}

type WarehouseStock struct {
	Product           int    `json:"product"`
	ProductArticle    string `json:"product_article,omitempty"`
	ProductName       string `json:"product_name,omitempty"`
	AvailableQuantity int    `json:"available_quantity"`
}
