package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Document struct {
	ID                   int             `json:"id,omitempty"`
	DocumentNumber       string          `json:"document_number,omitempty"`
	DocumentType         DocumentType    `json:"document_type"`
	Status               DocumentStatus  `json:"status"`
	Partner              string          `json:"partner"`
	SourceWarehouse      *int            `json:"source_warehouse"`
	DestinationWarehouse *int            `json:"destination_warehouse"`
	TotalProducts        int             `json:"total_products"`
	TotalCost            decimal.Decimal `json:"total_cost"`
	Currency             Currency        `json:"currency"`
	Notes                string          `json:"notes"`
	Items                []DocumentItem  `json:"items"`
	CreatedBy            int             `json:"created_by,omitempty"`
	CreatedAt            time.Time       `json:"created_at,omitempty"`
	UpdatedAt            time.Time       `json:"updated_at,omitempty"`
	CompletedAt          *time.Time      `json:"completed_at,omitempty"`
}

type DocumentItem struct {
	ID             int             `json:"id,omitempty"`
	Product        int             `json:"product"`
	Quantity       int             `json:"quantity"`
	Price          decimal.Decimal `json:"price"`
	TotalCost      decimal.Decimal `json:"total_cost"`
	BatchNumber    string          `json:"batch_number"`
	ExpirationDate *string         `json:"expiration_date"`
	Notes          string          `json:"notes"`
}

type DocumentHistory struct {
	ID          int            `json:"id"`
	User        int            `json:"user"`
	Action      HistoryAction  `json:"action"`
	Description string         `json:"description"`
	Changes     map[string]any `json:"changes"`
	CreatedAt   time.Time      `json:"created_at"`
}

// CanEdit mirrors the server rule: header and item mutations are accepted for
// draft and pending documents. The composer is stricter and only edits drafts.
func (d Document) CanEdit() bool {
	return d.Status == DocumentStatusDraft || d.Status == DocumentStatusPending
}

func (d Document) CanDelete() bool {
	return d.Status == DocumentStatusDraft
}

// NewDocument is the create/update wire payload. The warehouse requirements
// per document type depend on DocumentType and are checked by the composer,
// not by tags.
type NewDocument struct {
	DocumentType         DocumentType      `json:"document_type" validate:"required,oneof=incoming outgoing inventory return transfer"`
	Partner              string            `json:"partner"`
	SourceWarehouse      *int              `json:"source_warehouse"`
	DestinationWarehouse *int              `json:"destination_warehouse"`
	Currency             Currency          `json:"currency" validate:"required,oneof=RUB USD EUR CNY"`
	Notes                string            `json:"notes"`
	Status               DocumentStatus    `json:"status" validate:"required,oneof=draft pending completed cancelled"`
	Items                []NewDocumentItem `json:"items" validate:"required,min=1,dive"`
}

type NewDocumentItem struct {
	Product        int             `json:"product" validate:"required,gt=0"`
	Quantity       int             `json:"quantity" validate:"gte=1"`
	Price          decimal.Decimal `json:"price"`
	TotalCost      decimal.Decimal `json:"total_cost"`
	BatchNumber    string          `json:"batch_number"`
	ExpirationDate *string         `json:"expiration_date"`
	Notes          string          `json:"notes"`
}

// NewDocumentItemInput is the body of the per-item sub-operations
// (add_item / update_item) on a persisted document.
type NewDocumentItemInput struct {
	ItemID         int              `json:"item_id,omitempty"`
	Product        int              `json:"product,omitempty"`
	Quantity       *int             `json:"quantity,omitempty"`
	Price          *decimal.Decimal `json:"price,omitempty"`
	BatchNumber    *string          `json:"batch_number,omitempty"`
	ExpirationDate *string          `json:"expiration_date,omitempty"`
	Notes          *string          `json:"notes,omitempty"`
}
