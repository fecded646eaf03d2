package models

type DocumentType string

const (
	DocumentTypeIncoming  DocumentType = "incoming"
	DocumentTypeOutgoing  DocumentType = "outgoing"
	DocumentTypeInventory DocumentType = "inventory"
	DocumentTypeReturn    DocumentType = "return"
	DocumentTypeTransfer  DocumentType = "transfer"
)

func (t DocumentType) Valid() bool {
	switch t {
	case DocumentTypeIncoming, DocumentTypeOutgoing, DocumentTypeInventory,
		DocumentTypeReturn, DocumentTypeTransfer:
		return true
	}
	return false
}

// NumberPrefix mirrors the server's document_number scheme (IN000001, ...).
func (t DocumentType) NumberPrefix() string {
	switch t {
	case DocumentTypeIncoming:
		return "IN"
	case DocumentTypeOutgoing:
		return "OUT"
	case DocumentTypeInventory:
		return "INV"
	case DocumentTypeReturn:
		return "RET"
	case DocumentTypeTransfer:
		return "TRF"
	}
	return "DOC"
}

type DocumentStatus string

const (
	DocumentStatusDraft     DocumentStatus = "draft"
	DocumentStatusPending   DocumentStatus = "pending"
	DocumentStatusCompleted DocumentStatus = "completed"
	DocumentStatusCancelled DocumentStatus = "cancelled"
)

func (s DocumentStatus) Valid() bool {
	switch s {
	case DocumentStatusDraft, DocumentStatusPending, DocumentStatusCompleted, DocumentStatusCancelled:
		return true
	}
	return false
}

// Terminal statuses permit no further transition.
func (s DocumentStatus) Terminal() bool {
	return s == DocumentStatusCompleted || s == DocumentStatusCancelled
}

type Currency string

const (
	CurrencyRUB Currency = "RUB"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyCNY Currency = "CNY"
)

func (c Currency) Valid() bool {
	switch c {
	case CurrencyRUB, CurrencyUSD, CurrencyEUR, CurrencyCNY:
		return true
	}
	return false
}

type HistoryAction string

const (
	HistoryActionCreated       HistoryAction = "created"
	HistoryActionUpdated       HistoryAction = "updated"
	HistoryActionStatusChanged HistoryAction = "status_changed"
	HistoryActionItemAdded     HistoryAction = "item_added"
	HistoryActionItemUpdated   HistoryAction = "item_updated"
	HistoryActionItemDeleted   HistoryAction = "item_deleted"
	HistoryActionCompleted     HistoryAction = "completed"
	HistoryActionCancelled     HistoryAction = "cancelled"
)
