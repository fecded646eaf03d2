package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/exebone56/ecom-pulse2/models"
)

type DocumentFilter struct {
	Search       string
	DocumentType models.DocumentType
	Status       models.DocumentStatus
	Warehouse    int // destination_warehouse
	DateFrom     string
	DateTo       string
	Ordering     string
	Page         int
}

func (f DocumentFilter) values() url.Values {
	params := url.Values{}
	if f.Search != "" {
		params.Set("search", f.Search)
	}
	if f.DocumentType != "" {
		params.Set("document_type", string(f.DocumentType))
	}
	if f.Status != "" {
		params.Set("status", string(f.Status))
	}
	if f.Warehouse > 0 {
		params.Set("destination_warehouse", strconv.Itoa(f.Warehouse))
	}
	if f.DateFrom != "" {
		params.Set("date_from", f.DateFrom)
	}
	if f.DateTo != "" {
		params.Set("date_to", f.DateTo)
	}
	if f.Ordering != "" {
		params.Set("ordering", f.Ordering)
	}
	if f.Page > 1 {
		params.Set("page", strconv.Itoa(f.Page))
	}
	return params
}

func (c *Client) Documents(ctx context.Context, filter DocumentFilter) (*models.Page[models.Document], error) {
	var out models.Page[models.Document]
	if err := c.get(ctx, "/documents/", filter.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Document(ctx context.Context, id int) (*models.Document, error) {
	var out models.Document
	if err := c.get(ctx, fmt.Sprintf("/documents/%d/", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateDocument(ctx context.Context, input *models.NewDocument) (*models.Document, error) {
	var out models.Document
	if err := c.doJSON(ctx, http.MethodPost, "/documents/", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateDocument(ctx context.Context, id int, input *models.NewDocument) (*models.Document, error) {
	var out models.Document
	if err := c.doJSON(ctx, http.MethodPatch, fmt.Sprintf("/documents/%d/", id), input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteDocument(ctx context.Context, id int) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/documents/%d/", id), nil, nil)
}

// ChangeDocumentStatus requests the generic status transition. Completion
// side effects (stock posting) require the separate CompleteDocument call.
func (c *Client) ChangeDocumentStatus(ctx context.Context, id int, status models.DocumentStatus) (*models.Document, error) {
	body := map[string]models.DocumentStatus{"status": status}
	var out models.Document
	if err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/documents/%d/change_status/", id), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CompleteDocument(ctx context.Context, id int) (*models.Document, error) {
	var out models.Document
	if err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/documents/%d/complete/", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DocumentHistory(ctx context.Context, id int) ([]models.DocumentHistory, error) {
	var out []models.DocumentHistory
	if err := c.get(ctx, fmt.Sprintf("/documents/%d/history/", id), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AddDocumentItem(ctx context.Context, id int, item models.NewDocumentItemInput) (*models.DocumentItem, error) {
	var out models.DocumentItem
	if err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/documents/%d/add_item/", id), item, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateDocumentItem(ctx context.Context, id int, item models.NewDocumentItemInput) (*models.DocumentItem, error) {
	var out models.DocumentItem
	if err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/documents/%d/update_item/", id), item, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RemoveDocumentItem(ctx context.Context, id int, itemID int) error {
	body := map[string]int{"item_id": itemID}
	return c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/documents/%d/remove_item/", id), body, nil)
}

// DocumentItems lists the flat /document-items/ collection for one document.
func (c *Client) DocumentItems(ctx context.Context, documentID int) ([]models.DocumentItem, error) {
	params := url.Values{}
	params.Set("document", strconv.Itoa(documentID))
	var out []models.DocumentItem
	if err := c.get(ctx, "/document-items/", params, &out); err != nil {
		return nil, err
	}
	return out, nil
}
