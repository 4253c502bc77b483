package entities

import (
	"fmt"
	"time"
)

// WorkOrderStatus represents the execution state of a work order
type WorkOrderStatus string

const (
	WorkOrderPending    WorkOrderStatus = "pending"
	WorkOrderInProgress WorkOrderStatus = "in_progress"
	WorkOrderCompleted  WorkOrderStatus = "completed"
	WorkOrderOnHold     WorkOrderStatus = "on_hold"
)

// Valid reports whether the status is one of the known work order states
func (s WorkOrderStatus) Valid() bool {
	switch s {
	case WorkOrderPending, WorkOrderInProgress, WorkOrderCompleted, WorkOrderOnHold:
		return true
	default:
		return false
	}
}

// WorkOrder is the execution record for one work center assignment. At most
// one work order exists per assignment at a time; an assignment is consumed
// once a work order is created against it. Work orders are never deleted;
// they only move through the status state machine.
type WorkOrder struct {
	ID           string
	TenantID     string
	OrderID      string
	AssignmentID string
	Status       WorkOrderStatus
	PlannedQty   Quantity
	CompletedQty Quantity
	ActualStart  *time.Time
	ActualEnd    *time.Time
}

// NewWorkOrder creates a validated WorkOrder in pending state
func NewWorkOrder(id, tenantID, orderID, assignmentID string, plannedQty Quantity) (*WorkOrder, error) {
	if id == "" {
		return nil, fmt.Errorf("work order id cannot be empty")
	}
	if tenantID == "" {
		return nil, fmt.Errorf("tenant id cannot be empty")
	}
	if orderID == "" {
		return nil, fmt.Errorf("order id cannot be empty")
	}
	if assignmentID == "" {
		return nil, fmt.Errorf("assignment id cannot be empty")
	}
	if plannedQty <= 0 {
		return nil, fmt.Errorf("planned quantity must be positive, got %d", plannedQty)
	}

	return &WorkOrder{
		ID:           id,
		TenantID:     tenantID,
		OrderID:      orderID,
		AssignmentID: assignmentID,
		Status:       WorkOrderPending,
		PlannedQty:   plannedQty,
	}, nil
}
