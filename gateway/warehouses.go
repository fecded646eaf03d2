package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/exebone56/ecom-pulse2/models"
)

func (c *Client) Warehouses(ctx context.Context) ([]models.Warehouse, error) {
	var out []models.Warehouse
	if err := c.get(ctx, "/warehouses/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Warehouse(ctx context.Context, id int) (*models.Warehouse, error) {
	var out models.Warehouse
	if err := c.get(ctx, fmt.Sprintf("/warehouses/%d/", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type WarehouseInput struct {
	Name     string `json:"name" validate:"required"`
	Address  string `json:"address,omitempty"`
	IsActive *bool  `json:"is_active,omitempty"`
}

func (c *Client) CreateWarehouse(ctx context.Context, input WarehouseInput) (*models.Warehouse, error) {
	if err := validate.Struct(input); err != nil {
		return nil, &APIError{Message: err.Error()}
	}
	var out models.Warehouse
	if err := c.doJSON(ctx, http.MethodPost, "/warehouses/", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateWarehouse(ctx context.Context, id int, input WarehouseInput) (*models.Warehouse, error) {
	var out models.Warehouse
	if err := c.doJSON(ctx, http.MethodPatch, fmt.Sprintf("/warehouses/%d/", id), input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteWarehouse(ctx context.Context, id int) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/warehouses/%d/", id), nil, nil)
}

func (c *Client) WarehouseStock(ctx context.Context, id int, params url.Values) ([]models.WarehouseStock, error) {
	var out []models.WarehouseStock
	if err := c.get(ctx, fmt.Sprintf("/warehouses/%d/stock/", id), params, &out); err != nil {
		return nil, err
	}
	return out, nil
}
