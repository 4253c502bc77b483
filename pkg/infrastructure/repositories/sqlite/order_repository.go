package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/domain/entities"
	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/domain/repositories"
)

// OrderRepository provides SQLite-backed manufacturing order storage
type OrderRepository struct {
	db *DB
}

// NewOrderRepository creates an order repository over an open database
func NewOrderRepository(db *DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Verify interface compliance
var _ repositories.OrderRepository = (*OrderRepository)(nil)

const orderColumns = `id, tenant_id, part_number, planned_qty, produced_qty, status, created_at, actual_start, actual_end`

// GetOrder returns the order or ErrNotFound when it does not exist or
// belongs to another tenant.
func (r *OrderRepository) GetOrder(tenantID, orderID string) (*entities.ManufacturingOrder, error) {
	row := r.db.conn.QueryRow(
		`SELECT `+orderColumns+` FROM orders WHERE tenant_id = ? AND id = ?`,
		tenantID, orderID,
	)
	order, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: order %s", entities.ErrNotFound, orderID)
	}
	if err != nil {
		return nil, fmt.Errorf("query order %s: %w", orderID, err)
	}
	return order, nil
}

// ListOrders returns all orders of a tenant ordered by creation time
func (r *OrderRepository) ListOrders(tenantID string) ([]*entities.ManufacturingOrder, error) {
	rows, err := r.db.conn.Query(
		`SELECT `+orderColumns+` FROM orders WHERE tenant_id = ? ORDER BY created_at, id`,
		tenantID,
	)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	var orders []*entities.ManufacturingOrder
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

// SaveOrder inserts or replaces the order
func (r *OrderRepository) SaveOrder(order *entities.ManufacturingOrder) error {
	_, err := r.db.conn.Exec(
		`INSERT OR REPLACE INTO orders (`+orderColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		order.ID,
		order.TenantID,
		string(order.PartNumber),
		int64(order.PlannedQty),
		int64(order.ProducedQty),
		string(order.Status),
		order.CreatedAt.UTC().Format(time.RFC3339Nano),
		timeToNull(order.ActualStart),
		timeToNull(order.ActualEnd),
	)
	if err != nil {
		return fmt.Errorf("save order %s: %w", order.ID, err)
	}
	return nil
}

// scanner covers both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func scanOrder(s scanner) (*entities.ManufacturingOrder, error) {
	var (
		order      entities.ManufacturingOrder
		partNumber string
		status     string
		createdAt  string
		start, end sql.NullString
	)
	err := s.Scan(
		&order.ID,
		&order.TenantID,
		&partNumber,
		&order.PlannedQty,
		&order.ProducedQty,
		&status,
		&createdAt,
		&start,
		&end,
	)
	if err != nil {
		return nil, err
	}

	order.PartNumber = entities.PartNumber(partNumber)
	order.Status = entities.OrderStatus(status)
	if order.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return nil, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	if order.ActualStart, err = nullToTime(start); err != nil {
		return nil, err
	}
	if order.ActualEnd, err = nullToTime(end); err != nil {
		return nil, err
	}
	return &order, nil
}
