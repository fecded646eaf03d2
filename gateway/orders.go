package gateway

import (
	"context"
	"net/url"
	"strconv"

	"github.com/exebone56/ecom-pulse2/models"
	"github.com/shopspring/decimal"
)

type OrderFilter struct {
	Search     string
	DateFrom   string
	DateTo     string
	AmountFrom *decimal.Decimal
	AmountTo   *decimal.Decimal
	Page       int
}

func (f OrderFilter) values() url.Values {
	params := url.Values{}
	if f.Search != "" {
		params.Set("search", f.Search)
	}
	if f.DateFrom != "" {
		params.Set("date_from", f.DateFrom)
	}
	if f.DateTo != "" {
		params.Set("date_to", f.DateTo)
	}
	if f.AmountFrom != nil {
		params.Set("amount_from", f.AmountFrom.String())
	}
	if f.AmountTo != nil {
		params.Set("amount_to", f.AmountTo.String())
	}
	if f.Page > 1 {
		params.Set("page", strconv.Itoa(f.Page))
	}
	return params
}

func (c *Client) Orders(ctx context.Context, filter OrderFilter) (*models.Page[models.Order], error) {
	var out models.Page[models.Order]
	if err := c.get(ctx, "/orders/", filter.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
