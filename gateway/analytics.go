package gateway

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/exebone56/ecom-pulse2/models"
)

func (c *Client) RevenueStats(ctx context.Context) (*models.RevenueStats, error) {
	var out models.RevenueStats
	if err := c.get(ctx, "/revenue-stats/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RevenueChart returns monthly revenue points; marketplaceIDs narrows the
// series ("all" selects everything).
func (c *Client) RevenueChart(ctx context.Context, marketplaceIDs []string) ([]models.RevenuePoint, error) {
	params := url.Values{}
	if len(marketplaceIDs) == 0 {
		marketplaceIDs = []string{"all"}
	}
	params.Set("marketplaces", strings.Join(marketplaceIDs, ","))

	var out []models.RevenuePoint
	if err := c.get(ctx, "/revenue-chart/", params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) RevenueDaily(ctx context.Context, marketplaceID string) ([]models.RevenuePoint, error) {
	params := url.Values{}
	if marketplaceID == "" {
		marketplaceID = "all"
	}
	params.Set("marketplaces", marketplaceID)

	var out []models.RevenuePoint
	if err := c.get(ctx, "/revenue-daily/", params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DailyStats(ctx context.Context) (*models.DailyStats, error) {
	var out models.DailyStats
	if err := c.get(ctx, "/daily-stats/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) TopCategories(ctx context.Context) ([]models.TopCategory, error) {
	var out []models.TopCategory
	if err := c.get(ctx, "/top-categories/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) LowStockProducts(ctx context.Context, page, pageSize int) (*models.Page[models.LowStockProduct], error) {
	params := url.Values{}
	if page > 1 {
		params.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		params.Set("page_size", strconv.Itoa(pageSize))
	}

	var out models.Page[models.LowStockProduct]
	if err := c.get(ctx, "/low-stock-products/", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
