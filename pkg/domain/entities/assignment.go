package entities

import "fmt"

// WorkCenter represents a capacity resource that executes work orders
type WorkCenter struct {
	ID          string
	TenantID    string
	Name        string
	Description string
}

// NewWorkCenter creates a validated WorkCenter
func NewWorkCenter(id, tenantID, name string) (*WorkCenter, error) {
	if id == "" {
		return nil, fmt.Errorf("work center id cannot be empty")
	}
	if tenantID == "" {
		return nil, fmt.Errorf("tenant id cannot be empty")
	}
	if name == "" {
		return nil, fmt.Errorf("work center name cannot be empty")
	}
	return &WorkCenter{ID: id, TenantID: tenantID, Name: name}, nil
}

// WorkCenterAssignment is one planned step of a manufacturing order's
// execution plan. Assignments sharing a stage number form a stage; stages
// execute in ascending stage order. Parallel assignments must all complete
// for their stage to be satisfied; for sequential assignments any one
// completing satisfies the stage. Assignments are created at planning time
// and immutable thereafter; reordering means attaching a new plan.
type WorkCenterAssignment struct {
	ID           string
	OrderID      string
	WorkCenterID string
	Stage        int
	Parallel     bool
}

// NewWorkCenterAssignment creates a validated WorkCenterAssignment
func NewWorkCenterAssignment(id, orderID, workCenterID string, stage int, parallel bool) (*WorkCenterAssignment, error) {
	if id == "" {
		return nil, fmt.Errorf("assignment id cannot be empty")
	}
	if orderID == "" {
		return nil, fmt.Errorf("order id cannot be empty")
	}
	if workCenterID == "" {
		return nil, fmt.Errorf("work center id cannot be empty")
	}
	if stage <= 0 {
		return nil, fmt.Errorf("stage must be positive, got %d", stage)
	}

	return &WorkCenterAssignment{
		ID:           id,
		OrderID:      orderID,
		WorkCenterID: workCenterID,
		Stage:        stage,
		Parallel:     parallel,
	}, nil
}
