package memory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/domain/entities"
	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/domain/repositories"
)

// WorkOrderRepository provides in-memory work order storage
type WorkOrderRepository struct {
	mu         sync.RWMutex
	workOrders map[string]entities.WorkOrder // keyed by tenant+id
}

// NewWorkOrderRepository creates a new in-memory work order repository
func NewWorkOrderRepository() *WorkOrderRepository {
	return &WorkOrderRepository{workOrders: make(map[string]entities.WorkOrder)}
}

// Verify interface compliance
var _ repositories.WorkOrderRepository = (*WorkOrderRepository)(nil)

// GetWorkOrder returns a copy of the work order, or ErrNotFound when it does
// not exist or belongs to another tenant.
func (r *WorkOrderRepository) GetWorkOrder(tenantID, workOrderID string) (*entities.WorkOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	workOrder, ok := r.workOrders[orderKey(tenantID, workOrderID)]
	if !ok {
		return nil, fmt.Errorf("%w: work order %s", entities.ErrNotFound, workOrderID)
	}
	return &workOrder, nil
}

// ListWorkOrders returns copies of all work orders of one manufacturing
// order, ordered by ID for deterministic output.
func (r *WorkOrderRepository) ListWorkOrders(tenantID, orderID string) ([]*entities.WorkOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var workOrders []*entities.WorkOrder
	for _, workOrder := range r.workOrders {
		if workOrder.TenantID == tenantID && workOrder.OrderID == orderID {
			wo := workOrder
			workOrders = append(workOrders, &wo)
		}
	}
	sort.Slice(workOrders, func(i, j int) bool {
		return workOrders[i].ID < workOrders[j].ID
	})
	return workOrders, nil
}

// SaveWorkOrder stores a copy of the work order, creating or replacing it
func (r *WorkOrderRepository) SaveWorkOrder(workOrder *entities.WorkOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.workOrders[orderKey(workOrder.TenantID, workOrder.ID)] = *workOrder
	return nil
}
