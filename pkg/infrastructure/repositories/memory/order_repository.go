// Package memory provides thread-safe in-memory repository implementations.
// They back the test suites and small single-process deployments; the sqlite
// package provides the durable variant.
package memory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/domain/entities"
	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/domain/repositories"
)

// OrderRepository provides in-memory manufacturing order storage
type OrderRepository struct {
	mu     sync.RWMutex
	orders map[string]entities.ManufacturingOrder // keyed by tenant+id
}

// NewOrderRepository creates a new in-memory order repository
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{orders: make(map[string]entities.ManufacturingOrder)}
}

// Verify interface compliance
var _ repositories.OrderRepository = (*OrderRepository)(nil)

func orderKey(tenantID, orderID string) string {
	return tenantID + "/" + orderID
}

// GetOrder returns a copy of the order, or ErrNotFound when it does not
// exist or belongs to another tenant.
func (r *OrderRepository) GetOrder(tenantID, orderID string) (*entities.ManufacturingOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[orderKey(tenantID, orderID)]
	if !ok {
		return nil, fmt.Errorf("%w: order %s", entities.ErrNotFound, orderID)
	}
	return &order, nil
}

// ListOrders returns all orders of a tenant, ordered by creation time
func (r *OrderRepository) ListOrders(tenantID string) ([]*entities.ManufacturingOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var orders []*entities.ManufacturingOrder
	for _, order := range r.orders {
		if order.TenantID == tenantID {
			o := order
			orders = append(orders, &o)
		}
	}
	sort.Slice(orders, func(i, j int) bool {
		if orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].ID < orders[j].ID
		}
		return orders[i].CreatedAt.Before(orders[j].CreatedAt)
	})
	return orders, nil
}

// SaveOrder stores a copy of the order, creating or replacing it
func (r *OrderRepository) SaveOrder(order *entities.ManufacturingOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders[orderKey(order.TenantID, order.ID)] = *order
	return nil
}
