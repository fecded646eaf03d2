package composer

import (
	"context"

	"github.com/exebone56/ecom-pulse2/config"
	"github.com/exebone56/ecom-pulse2/models"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// BuildPayload converts the current document into the create/update wire
// payload. Line quantities below 1 are coerced to 1 on the wire (the stored
// line keeps its value), the empty expiration date goes out as null, and a
// new document is always created as a draft regardless of targetStatus.
func (c *Composer) BuildPayload(targetStatus models.DocumentStatus) (*models.NewDocument, error) {
	c.mu.Lock()
	doc := c.snapshotLocked()
	c.mu.Unlock()
	return buildPayload(doc, targetStatus)
}

func buildPayload(doc models.Document, targetStatus models.DocumentStatus) (*models.NewDocument, error) {
	status := targetStatus
	if doc.ID == 0 || status == "" {
		status = models.DocumentStatusDraft
	}
	if doc.ID != 0 && targetStatus == "" {
		status = doc.Status
	}

	payload := &models.NewDocument{
		DocumentType:         doc.DocumentType,
		Partner:              doc.Partner,
		SourceWarehouse:      doc.SourceWarehouse,
		DestinationWarehouse: doc.DestinationWarehouse,
		Currency:             doc.Currency,
		Notes:                doc.Notes,
		Status:               status,
		Items:                make([]models.NewDocumentItem, 0, len(doc.Items)),
	}
	for _, item := range doc.Items {
		quantity := item.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		var expiration *string
		if item.ExpirationDate != nil && *item.ExpirationDate != "" {
			expiration = item.ExpirationDate
		}
		payload.Items = append(payload.Items, models.NewDocumentItem{
			Product:        item.Product,
			Quantity:       quantity,
			Price:          item.Price,
			TotalCost:      item.TotalCost,
			BatchNumber:    item.BatchNumber,
			ExpirationDate: expiration,
			Notes:          item.Notes,
		})
	}
	if err := validate.Struct(payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// Save persists the document: POST for a new draft, PATCH for an existing
// one. On success the composer replaces its state with the server's answer;
// on failure local state is untouched.
func (c *Composer) Save(ctx context.Context) error {
	c.mu.Lock()
	doc := c.snapshotLocked()
	c.mu.Unlock()

	if err := validateForSaveLocked(doc); err != nil {
		return err
	}
	payload, err := buildPayload(doc, doc.Status)
	if err != nil {
		return err
	}

	var saved *models.Document
	if doc.ID == 0 {
		saved, err = c.api.CreateDocument(ctx, payload)
	} else {
		saved, err = c.api.UpdateDocument(ctx, doc.ID, payload)
	}
	if err != nil {
		config.LogError(c.logger, "composer", "Save", "persisting document", doc.ID, err)
		return err
	}

	c.mu.Lock()
	c.doc = *saved
	c.mu.Unlock()
	return nil
}
