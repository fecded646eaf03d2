// Package composer holds one in-progress warehouse document (new or loaded
// for edit) and mutates it in response to discrete user actions, keeping the
// derived fields consistent. Persistence and status transitions go through
// the gateway; after any successful mutation the composer re-reads the
// document from the backend rather than trusting its own optimistic copy.
package composer

import (
	"context"
	"sync"

	"github.com/exebone56/ecom-pulse2/config"
	"github.com/exebone56/ecom-pulse2/gateway"
	"github.com/exebone56/ecom-pulse2/models"
	"github.com/exebone56/ecom-pulse2/utils"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// ValidationError is a client-side precondition failure: the action is
// blocked and no network call is made.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func errReadOnly() *ValidationError {
	return &ValidationError{Reason: "document can only be edited in draft status"}
}

type Composer struct {
	api    *gateway.Client
	logger *logrus.Logger

	mu  sync.Mutex
	doc models.Document
}

// New starts a blank draft with the dashboard's defaults.
func New(api *gateway.Client, logger *logrus.Logger) *Composer {
	if logger == nil {
		logger = config.GetLogger()
	}
	return &Composer{
		api:    api,
		logger: logger,
		doc: models.Document{
			DocumentType: models.DocumentTypeIncoming,
			Status:       models.DocumentStatusDraft,
			Currency:     models.CurrencyRUB,
			Items:        []models.DocumentItem{},
		},
	}
}

// Load fetches a persisted document for viewing or editing.
func Load(ctx context.Context, api *gateway.Client, logger *logrus.Logger, id int) (*Composer, error) {
	doc, err := api.Document(ctx, id)
	if err != nil {
		return nil, err
	}
	c := New(api, logger)
	c.doc = *doc
	return c, nil
}

// Document returns a copy of the current draft; items are copied so callers
// cannot bypass the derived-total invariant.
func (c *Composer) Document() models.Document {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Composer) snapshotLocked() models.Document {
	doc := c.doc
	doc.Items = make([]models.DocumentItem, len(c.doc.Items))
	copy(doc.Items, c.doc.Items)
	return doc
}

func (c *Composer) editableLocked() bool {
	return c.doc.Status == models.DocumentStatusDraft
}

func (c *Composer) SetDocumentType(t models.DocumentType) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.editableLocked() {
		return errReadOnly()
	}
	if !t.Valid() {
		return &ValidationError{Reason: "unknown document type"}
	}
	c.doc.DocumentType = t
	return nil
}

func (c *Composer) SetPartner(partner string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.editableLocked() {
		return errReadOnly()
	}
	c.doc.Partner = partner
	return nil
}

func (c *Composer) SetSourceWarehouse(id *int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.editableLocked() {
		return errReadOnly()
	}
	c.doc.SourceWarehouse = id
	return nil
}

func (c *Composer) SetDestinationWarehouse(id *int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.editableLocked() {
		return errReadOnly()
	}
	c.doc.DestinationWarehouse = id
	return nil
}

func (c *Composer) SetCurrency(cur models.Currency) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.editableLocked() {
		return errReadOnly()
	}
	if !cur.Valid() {
		return &ValidationError{Reason: "unknown currency"}
	}
	c.doc.Currency = cur
	return nil
}

func (c *Composer) SetNotes(notes string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.editableLocked() {
		return errReadOnly()
	}
	c.doc.Notes = notes
	return nil
}

// AddProduct appends a line for the product, or bumps the quantity by one if
// a line for it already exists (price untouched). One line per product.
func (c *Composer) AddProduct(p models.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.editableLocked() {
		return errReadOnly()
	}
	for i := range c.doc.Items {
		if c.doc.Items[i].Product == p.ID {
			c.doc.Items[i].Quantity++
			c.recomputeItemLocked(i)
			return nil
		}
	}
	c.doc.Items = append(c.doc.Items, models.DocumentItem{
		Product:   p.ID,
		Quantity:  1,
		Price:     p.Price,
		TotalCost: p.Price,
	})
	return nil
}

// SetItemQuantity parses raw user input; anything non-numeric (including an
// empty field) becomes 0. The line is kept even at quantity 0.
func (c *Composer) SetItemQuantity(productID int, raw string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.editableLocked() {
		return errReadOnly()
	}
	for i := range c.doc.Items {
		if c.doc.Items[i].Product == productID {
			c.doc.Items[i].Quantity = utils.ParseQuantity(raw)
			c.recomputeItemLocked(i)
			return nil
		}
	}
	return &ValidationError{Reason: "product is not in the document"}
}

func (c *Composer) SetItemPrice(productID int, raw string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.editableLocked() {
		return errReadOnly()
	}
	for i := range c.doc.Items {
		if c.doc.Items[i].Product == productID {
			c.doc.Items[i].Price = utils.ParseAmount(raw)
			c.recomputeItemLocked(i)
			return nil
		}
	}
	return &ValidationError{Reason: "product is not in the document"}
}

func (c *Composer) SetItemBatchNumber(productID int, batch string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.editableLocked() {
		return errReadOnly()
	}
	for i := range c.doc.Items {
		if c.doc.Items[i].Product == productID {
			c.doc.Items[i].BatchNumber = batch
			return nil
		}
	}
	return &ValidationError{Reason: "product is not in the document"}
}

func (c *Composer) SetItemExpirationDate(productID int, date *string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.editableLocked() {
		return errReadOnly()
	}
	for i := range c.doc.Items {
		if c.doc.Items[i].Product == productID {
			c.doc.Items[i].ExpirationDate = date
			return nil
		}
	}
	return &ValidationError{Reason: "product is not in the document"}
}

// total_cost is derived, never settable: it is recomputed on every quantity
// or price mutation.
func (c *Composer) recomputeItemLocked(i int) {
	item := &c.doc.Items[i]
	item.TotalCost = decimal.NewFromInt(int64(item.Quantity)).Mul(item.Price)
}

// RemoveItem drops the line; no effect if absent.
func (c *Composer) RemoveItem(productID int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.editableLocked() {
		return errReadOnly()
	}
	for i := range c.doc.Items {
		if c.doc.Items[i].Product == productID {
			c.doc.Items = append(c.doc.Items[:i], c.doc.Items[i+1:]...)
			return nil
		}
	}
	return nil
}

// ClearItems empties the list. The UI gates this behind a confirmation when
// the list is non-empty; the composer itself does not ask.
func (c *Composer) ClearItems() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.editableLocked() {
		return errReadOnly()
	}
	c.doc.Items = []models.DocumentItem{}
	return nil
}

type Totals struct {
	TotalQuantity int
	TotalCost     decimal.Decimal
	LineCount     int
}

// Totals is a pure derived read over the item list.
func (c *Composer) Totals() Totals {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := Totals{LineCount: len(c.doc.Items), TotalCost: decimal.Zero}
	for _, item := range c.doc.Items {
		t.TotalQuantity += item.Quantity
		t.TotalCost = t.TotalCost.Add(item.TotalCost)
	}
	return t
}

// ValidateForSave checks the save preconditions: at least one item, and the
// warehouses the current document type requires. It must pass before any
// persistence attempt.
func (c *Composer) ValidateForSave() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return validateForSaveLocked(c.doc)
}

func validateForSaveLocked(doc models.Document) error {
	if len(doc.Items) == 0 {
		return &ValidationError{Reason: "add at least one product to the document"}
	}
	switch doc.DocumentType {
	case models.DocumentTypeIncoming:
		if doc.DestinationWarehouse == nil {
			return &ValidationError{Reason: "incoming document requires a destination warehouse"}
		}
	case models.DocumentTypeOutgoing:
		if doc.SourceWarehouse == nil {
			return &ValidationError{Reason: "outgoing document requires a source warehouse"}
		}
	case models.DocumentTypeTransfer:
		// Same-warehouse transfers are not rejected here; the server owns
		// that call (see DESIGN.md).
		if doc.SourceWarehouse == nil || doc.DestinationWarehouse == nil {
			return &ValidationError{Reason: "transfer requires both source and destination warehouses"}
		}
	}
	return nil
}
