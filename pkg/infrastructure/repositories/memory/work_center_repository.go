package memory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/domain/entities"
	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/domain/repositories"
)

// WorkCenterRepository provides in-memory work center storage
type WorkCenterRepository struct {
	mu          sync.RWMutex
	workCenters map[string]entities.WorkCenter // keyed by tenant+id
}

// NewWorkCenterRepository creates a new in-memory work center repository
func NewWorkCenterRepository() *WorkCenterRepository {
	return &WorkCenterRepository{workCenters: make(map[string]entities.WorkCenter)}
}

// Verify interface compliance
var _ repositories.WorkCenterRepository = (*WorkCenterRepository)(nil)

// GetWorkCenter returns a copy of the work center or ErrNotFound
func (r *WorkCenterRepository) GetWorkCenter(tenantID, workCenterID string) (*entities.WorkCenter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	workCenter, ok := r.workCenters[orderKey(tenantID, workCenterID)]
	if !ok {
		return nil, fmt.Errorf("%w: work center %s", entities.ErrNotFound, workCenterID)
	}
	return &workCenter, nil
}

// ListWorkCenters returns all work centers of a tenant ordered by ID
func (r *WorkCenterRepository) ListWorkCenters(tenantID string) ([]*entities.WorkCenter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var workCenters []*entities.WorkCenter
	for _, workCenter := range r.workCenters {
		if workCenter.TenantID == tenantID {
			wc := workCenter
			workCenters = append(workCenters, &wc)
		}
	}
	sort.Slice(workCenters, func(i, j int) bool {
		return workCenters[i].ID < workCenters[j].ID
	})
	return workCenters, nil
}

// SaveWorkCenter stores a copy of the work center
func (r *WorkCenterRepository) SaveWorkCenter(workCenter *entities.WorkCenter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.workCenters[orderKey(workCenter.TenantID, workCenter.ID)] = *workCenter
	return nil
}
