package models

import "github.com/shopspring/decimal"

type RevenueStats struct {
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	MonthRevenue  decimal.Decimal `json:"month_revenue"`
	OrdersCount   int             `json:"orders_count"`
	AverageCheck  decimal.Decimal `json:"average_check"`
	GrowthPercent decimal.Decimal `json:"growth_percent"`
}

type RevenuePoint struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
	Orders  int             `json:"orders"`
}

type DailyStats struct {
	Date         string          `json:"date"`
	OrdersCount  int             `json:"orders_count"`
	Revenue      decimal.Decimal `json:"revenue"`
	ItemsShipped int             `json:"items_shipped"`
}

type TopCategory struct {
	Category int             `json:"category"`
	Name     string          `json:"name"`
	Revenue  decimal.Decimal `json:"revenue"`
	Share    decimal.Decimal `json:"share"`
}

type LowStockProduct struct {
	Product           int    `json:"product"`
	Article           string `json:"article"`
	Name              string `json:"name"`
	AvailableQuantity int    `json:"available_quantity"`
	Threshold         int    `json:"threshold"`
}
