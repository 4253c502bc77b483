package repositories

import "github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/domain/entities"

// OrderRepository provides access to manufacturing orders. All lookups are
// tenant-scoped: an order belonging to another tenant behaves as missing.
type OrderRepository interface {
	GetOrder(tenantID, orderID string) (*entities.ManufacturingOrder, error)
	ListOrders(tenantID string) ([]*entities.ManufacturingOrder, error)
	SaveOrder(order *entities.ManufacturingOrder) error
}
