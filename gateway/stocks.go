package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/exebone56/ecom-pulse2/models"
)

type StockFilter struct {
	Search   string
	Article  string
	LowStock bool
	Page     int
}

func (f StockFilter) values() url.Values {
	params := url.Values{}
	if f.Search != "" {
		params.Set("search", f.Search)
	}
	if f.Article != "" {
		params.Set("article", f.Article)
	}
	if f.LowStock {
		params.Set("low_stock", "true")
	}
	if f.Page > 1 {
		params.Set("page", strconv.Itoa(f.Page))
	}
	return params
}

func (c *Client) Stocks(ctx context.Context, filter StockFilter) (*models.Page[models.Stock], error) {
	var out models.Page[models.Stock]
	if err := c.get(ctx, "/stocks/", filter.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Stock(ctx context.Context, id int) (*models.Stock, error) {
	var out models.Stock
	if err := c.get(ctx, fmt.Sprintf("/stocks/%d/", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateStock(ctx context.Context, id int, availableQuantity int) (*models.Stock, error) {
	body := map[string]int{"available_quantity": availableQuantity}
	var out models.Stock
	if err := c.doJSON(ctx, http.MethodPatch, fmt.Sprintf("/stocks/%d/update_stock/", id), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BulkUpdateStocks uploads an operator-edited spreadsheet. The server parses
// it row by row and reports per-row errors alongside the applied updates.
func (c *Client) BulkUpdateStocks(ctx context.Context, filename string, file []byte) (*models.BulkUpdateResult, error) {
	f := newForm()
	f.file("file", filename, file)

	var out models.BulkUpdateResult
	if err := c.doMultipart(ctx, http.MethodPost, "/stocks/bulk_update/", f, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DownloadStockTemplate fetches the xlsx template as raw bytes.
func (c *Client) DownloadStockTemplate(ctx context.Context) ([]byte, error) {
	return c.getBytes(ctx, "/stocks/download_template/", nil)
}

func (c *Client) LowStock(ctx context.Context) ([]models.Stock, error) {
	var out []models.Stock
	if err := c.get(ctx, "/stocks/low_stock/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
