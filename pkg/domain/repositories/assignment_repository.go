package repositories

import "github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/domain/entities"

// AssignmentRepository supplies the immutable stage plan of an order.
// An order without an attached plan yields an empty slice, not an error.
type AssignmentRepository interface {
	GetPlan(tenantID, orderID string) ([]*entities.WorkCenterAssignment, error)
	SavePlan(tenantID, orderID string, assignments []*entities.WorkCenterAssignment) error
}
