package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/exebone56/ecom-pulse2/models"
	"github.com/shopspring/decimal"
)

type ProductFilter struct {
	Search    string
	Category  int
	Country   int
	Direction int
	IsActive  *bool
	DateFrom  string // filters created_at
	DateTo    string
	Ordering  string
	Page      int
}

func (f ProductFilter) values() url.Values {
	params := url.Values{}
	if f.Search != "" {
		params.Set("search", f.Search)
	}
	if f.Category > 0 {
		params.Set("category", strconv.Itoa(f.Category))
	}
	if f.Country > 0 {
		params.Set("country", strconv.Itoa(f.Country))
	}
	if f.Direction > 0 {
		params.Set("direction", strconv.Itoa(f.Direction))
	}
	if f.IsActive != nil {
		params.Set("is_active", strconv.FormatBool(*f.IsActive))
	}
	if f.DateFrom != "" {
		params.Set("created_at_after", f.DateFrom)
	}
	if f.DateTo != "" {
		params.Set("created_at_before", f.DateTo)
	}
	if f.Ordering != "" {
		params.Set("ordering", f.Ordering)
	}
	if f.Page > 1 {
		params.Set("page", strconv.Itoa(f.Page))
	}
	return params
}

func (c *Client) Products(ctx context.Context, filter ProductFilter) (*models.Page[models.Product], error) {
	var out models.Page[models.Product]
	if err := c.get(ctx, "/products/", filter.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Product(ctx context.Context, id int) (*models.Product, error) {
	var out models.Product
	if err := c.get(ctx, fmt.Sprintf("/products/%d/", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ProductInput is the multipart write payload for product create/update.
// MainImage, when set, travels as the file part.
type ProductInput struct {
	Article       string
	Name          string
	Description   string
	Price         *decimal.Decimal
	Category      *int
	Country       *int
	Direction     *int
	IsActive      *bool
	MainImageName string
	MainImage     []byte
}

func (in ProductInput) form() *form {
	f := newForm()
	f.field("article", in.Article)
	f.field("name", in.Name)
	f.field("description", in.Description)
	if in.Price != nil {
		f.field("price", in.Price.String())
	}
	if in.Category != nil {
		f.field("category", strconv.Itoa(*in.Category))
	}
	if in.Country != nil {
		f.field("country", strconv.Itoa(*in.Country))
	}
	if in.Direction != nil {
		f.field("direction", strconv.Itoa(*in.Direction))
	}
	if in.IsActive != nil {
		f.field("is_active", strconv.FormatBool(*in.IsActive))
	}
	if len(in.MainImage) > 0 {
		f.file("main_image", in.MainImageName, shrinkForUpload(in.MainImage, productImageMaxWidth))
	}
	return f
}

func (c *Client) CreateProduct(ctx context.Context, input ProductInput) (*models.Product, error) {
	var out models.Product
	if err := c.doMultipart(ctx, http.MethodPost, "/products/", input.form(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id int, input ProductInput) (*models.Product, error) {
	var out models.Product
	if err := c.doMultipart(ctx, http.MethodPatch, fmt.Sprintf("/products/%d/", id), input.form(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AddProductImage(ctx context.Context, productID int, filename string, data []byte) (*models.ProductImage, error) {
	f := newForm()
	f.file("image", filename, shrinkForUpload(data, productImageMaxWidth))

	var out models.ProductImage
	if err := c.doMultipart(ctx, http.MethodPost, fmt.Sprintf("/products/%d/images/", productID), f, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ProductImage(ctx context.Context, productID, imageID int) (*models.ProductImage, error) {
	var out models.ProductImage
	if err := c.get(ctx, fmt.Sprintf("/products/%d/images/%d/", productID, imageID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProductImage(ctx context.Context, productID, imageID int) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/products/%d/images/%d/", productID, imageID), nil, nil)
}

func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	if err := c.get(ctx, "/categories/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) FilterOptions(ctx context.Context) (*models.FilterOptions, error) {
	var out models.FilterOptions
	if err := c.get(ctx, "/filter-options/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
