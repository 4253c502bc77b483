package repositories

import "github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/domain/entities"

// WorkOrderRepository provides access to work order execution records
type WorkOrderRepository interface {
	GetWorkOrder(tenantID, workOrderID string) (*entities.WorkOrder, error)
	ListWorkOrders(tenantID, orderID string) ([]*entities.WorkOrder, error)
	SaveWorkOrder(workOrder *entities.WorkOrder) error
}
