package memory

import (
	"sync"

	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/domain/entities"
	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/domain/repositories"
)

// AssignmentRepository provides in-memory stage plan storage
type AssignmentRepository struct {
	mu    sync.RWMutex
	plans map[string][]entities.WorkCenterAssignment // keyed by tenant+order
}

// NewAssignmentRepository creates a new in-memory assignment repository
func NewAssignmentRepository() *AssignmentRepository {
	return &AssignmentRepository{plans: make(map[string][]entities.WorkCenterAssignment)}
}

// Verify interface compliance
var _ repositories.AssignmentRepository = (*AssignmentRepository)(nil)

// GetPlan returns copies of the order's assignments in plan order. An order
// without a plan yields an empty slice.
func (r *AssignmentRepository) GetPlan(tenantID, orderID string) ([]*entities.WorkCenterAssignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.plans[orderKey(tenantID, orderID)]
	assignments := make([]*entities.WorkCenterAssignment, 0, len(stored))
	for _, a := range stored {
		assignment := a
		assignments = append(assignments, &assignment)
	}
	return assignments, nil
}

// SavePlan stores the order's plan, replacing any previous one. Plan
// immutability is the planning service's rule, not the repository's.
func (r *AssignmentRepository) SavePlan(tenantID, orderID string, assignments []*entities.WorkCenterAssignment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := make([]entities.WorkCenterAssignment, len(assignments))
	for i, a := range assignments {
		stored[i] = *a
	}
	r.plans[orderKey(tenantID, orderID)] = stored
	return nil
}
