package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// StockMovementType represents the direction of a stock ledger entry
type StockMovementType string

const (
	StockReceipt StockMovementType = "receipt"
	StockIssue   StockMovementType = "issue"
)

// StockEntry is one row of the stock ledger. Quantities are decimal because
// receipts from process work centers may report fractional amounts even when
// order planning counts whole units.
type StockEntry struct {
	ID         string
	TenantID   string
	PartNumber PartNumber
	Movement   StockMovementType
	Quantity   decimal.Decimal
	Reference  string // originating document, e.g. a manufacturing order ID
	PostedAt   time.Time
}

// NewStockEntry creates a validated StockEntry
func NewStockEntry(id, tenantID string, partNumber PartNumber, movement StockMovementType, quantity decimal.Decimal, reference string) (*StockEntry, error) {
	if id == "" {
		return nil, fmt.Errorf("stock entry id cannot be empty")
	}
	if tenantID == "" {
		return nil, fmt.Errorf("tenant id cannot be empty")
	}
	if string(partNumber) == "" {
		return nil, fmt.Errorf("part number cannot be empty")
	}
	if movement != StockReceipt && movement != StockIssue {
		return nil, fmt.Errorf("unknown stock movement type %q", movement)
	}
	if quantity.IsNegative() || quantity.IsZero() {
		return nil, fmt.Errorf("stock quantity must be positive, got %s", quantity)
	}

	return &StockEntry{
		ID:         id,
		TenantID:   tenantID,
		PartNumber: partNumber,
		Movement:   movement,
		Quantity:   quantity,
		Reference:  reference,
		PostedAt:   time.Now(),
	}, nil
}
