package dto

import (
	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/domain/entities"
)

// WorkOrderUpdateResult contains the outcome of a work order mutation
type WorkOrderUpdateResult struct {
	// WorkOrder is the work order after the update
	WorkOrder *entities.WorkOrder
	// OrderCompleted is true when this update cascaded the parent
	// manufacturing order into completed
	OrderCompleted bool
	// Order is the parent order after the update, populated when the update
	// touched it (order start or completion)
	Order *entities.ManufacturingOrder
}

// StageProgress describes one stage of an order's plan for reporting
type StageProgress struct {
	Stage       int
	Parallel    bool
	Assignments []AssignmentProgress
	Satisfied   bool
}

// AssignmentProgress pairs an assignment with its work order, if any
type AssignmentProgress struct {
	Assignment *entities.WorkCenterAssignment
	WorkOrder  *entities.WorkOrder
	Eligible   bool
}

// OrderProgress is the full progress report for one manufacturing order
type OrderProgress struct {
	Order  *entities.ManufacturingOrder
	Stages []StageProgress
	// Unplanned holds work orders of an order without an attached plan
	Unplanned []*entities.WorkOrder
}
