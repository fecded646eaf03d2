package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/exebone56/ecom-pulse2/models"
)

func (c *Client) Marketplaces(ctx context.Context) ([]models.Marketplace, error) {
	var out []models.Marketplace
	if err := c.get(ctx, "/marketplaces/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ProductMarketplaces(ctx context.Context, productID int) ([]models.MarketplaceProduct, error) {
	var out []models.MarketplaceProduct
	if err := c.get(ctx, fmt.Sprintf("/products/%d/marketplace-products-list/", productID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateMarketplaceProduct(ctx context.Context, productID, marketplaceID int, input models.MarketplaceProduct) (*models.MarketplaceProduct, error) {
	var out models.MarketplaceProduct
	path := fmt.Sprintf("/products/%d/marketplace-products/%d/", productID, marketplaceID)
	if err := c.doJSON(ctx, http.MethodPut, path, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteMarketplaceProduct(ctx context.Context, productID, marketplaceID int) error {
	path := fmt.Sprintf("/products/%d/marketplace-products/%d/", productID, marketplaceID)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}
