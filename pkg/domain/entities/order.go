package entities

import (
	"fmt"
	"time"
)

// OrderStatus represents the lifecycle state of a manufacturing order
type OrderStatus string

const (
	OrderDraft      OrderStatus = "draft"
	OrderInProgress OrderStatus = "in_progress"
	OrderCompleted  OrderStatus = "completed"
	OrderCancelled  OrderStatus = "cancelled"
)

// Valid reports whether the status is one of the known order states
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderDraft, OrderInProgress, OrderCompleted, OrderCancelled:
		return true
	default:
		return false
	}
}

// ManufacturingOrder represents one production run of a finished item.
// Status only ever advances draft -> in_progress -> completed; cancellation
// is a terminal exit available from draft only. Orders are soft-cancelled,
// never hard-deleted once past draft.
type ManufacturingOrder struct {
	ID          string
	TenantID    string
	PartNumber  PartNumber
	PlannedQty  Quantity
	ProducedQty Quantity
	Status      OrderStatus
	CreatedAt   time.Time
	ActualStart *time.Time
	ActualEnd   *time.Time
}

// NewManufacturingOrder creates a validated ManufacturingOrder in draft
func NewManufacturingOrder(id, tenantID string, partNumber PartNumber, plannedQty Quantity) (*ManufacturingOrder, error) {
	if id == "" {
		return nil, fmt.Errorf("order id cannot be empty")
	}
	if tenantID == "" {
		return nil, fmt.Errorf("tenant id cannot be empty")
	}
	if string(partNumber) == "" {
		return nil, fmt.Errorf("part number cannot be empty")
	}
	if plannedQty <= 0 {
		return nil, fmt.Errorf("planned quantity must be positive, got %d", plannedQty)
	}

	return &ManufacturingOrder{
		ID:         id,
		TenantID:   tenantID,
		PartNumber: partNumber,
		PlannedQty: plannedQty,
		Status:     OrderDraft,
		CreatedAt:  time.Now(),
	}, nil
}

// CanAdvanceTo reports whether the order may move to the given status.
// Forward-only: draft -> in_progress -> completed, with cancel from draft.
func (o *ManufacturingOrder) CanAdvanceTo(next OrderStatus) bool {
	switch o.Status {
	case OrderDraft:
		return next == OrderInProgress || next == OrderCancelled
	case OrderInProgress:
		return next == OrderCompleted
	default:
		return false
	}
}
