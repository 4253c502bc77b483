package repositories

import "github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/domain/entities"

// WorkCenterRepository provides access to work center master data
type WorkCenterRepository interface {
	GetWorkCenter(tenantID, workCenterID string) (*entities.WorkCenter, error)
	ListWorkCenters(tenantID string) ([]*entities.WorkCenter, error)
	SaveWorkCenter(workCenter *entities.WorkCenter) error
}
