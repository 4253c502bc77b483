package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/domain/entities"
	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/domain/repositories"
)

// WorkOrderRepository provides SQLite-backed work order storage
type WorkOrderRepository struct {
	db *DB
}

// NewWorkOrderRepository creates a work order repository over an open database
func NewWorkOrderRepository(db *DB) *WorkOrderRepository {
	return &WorkOrderRepository{db: db}
}

// Verify interface compliance
var _ repositories.WorkOrderRepository = (*WorkOrderRepository)(nil)

const workOrderColumns = `id, tenant_id, order_id, assignment_id, status, planned_qty, completed_qty, actual_start, actual_end`

// GetWorkOrder returns the work order or ErrNotFound when it does not exist
// or belongs to another tenant.
func (r *WorkOrderRepository) GetWorkOrder(tenantID, workOrderID string) (*entities.WorkOrder, error) {
	row := r.db.conn.QueryRow(
		`SELECT `+workOrderColumns+` FROM work_orders WHERE tenant_id = ? AND id = ?`,
		tenantID, workOrderID,
	)
	workOrder, err := scanWorkOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: work order %s", entities.ErrNotFound, workOrderID)
	}
	if err != nil {
		return nil, fmt.Errorf("query work order %s: %w", workOrderID, err)
	}
	return workOrder, nil
}

// ListWorkOrders returns all work orders of one manufacturing order
func (r *WorkOrderRepository) ListWorkOrders(tenantID, orderID string) ([]*entities.WorkOrder, error) {
	rows, err := r.db.conn.Query(
		`SELECT `+workOrderColumns+` FROM work_orders WHERE tenant_id = ? AND order_id = ? ORDER BY id`,
		tenantID, orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("query work orders: %w", err)
	}
	defer rows.Close()

	var workOrders []*entities.WorkOrder
	for rows.Next() {
		workOrder, err := scanWorkOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan work order: %w", err)
		}
		workOrders = append(workOrders, workOrder)
	}
	return workOrders, rows.Err()
}

// SaveWorkOrder inserts or replaces the work order
func (r *WorkOrderRepository) SaveWorkOrder(workOrder *entities.WorkOrder) error {
	_, err := r.db.conn.Exec(
		`INSERT OR REPLACE INTO work_orders (`+workOrderColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		workOrder.ID,
		workOrder.TenantID,
		workOrder.OrderID,
		workOrder.AssignmentID,
		string(workOrder.Status),
		int64(workOrder.PlannedQty),
		int64(workOrder.CompletedQty),
		timeToNull(workOrder.ActualStart),
		timeToNull(workOrder.ActualEnd),
	)
	if err != nil {
		return fmt.Errorf("save work order %s: %w", workOrder.ID, err)
	}
	return nil
}

func scanWorkOrder(s scanner) (*entities.WorkOrder, error) {
	var (
		workOrder  entities.WorkOrder
		status     string
		start, end sql.NullString
	)
	err := s.Scan(
		&workOrder.ID,
		&workOrder.TenantID,
		&workOrder.OrderID,
		&workOrder.AssignmentID,
		&status,
		&workOrder.PlannedQty,
		&workOrder.CompletedQty,
		&start,
		&end,
	)
	if err != nil {
		return nil, err
	}

	workOrder.Status = entities.WorkOrderStatus(status)
	if workOrder.ActualStart, err = nullToTime(start); err != nil {
		return nil, err
	}
	if workOrder.ActualEnd, err = nullToTime(end); err != nil {
		return nil, err
	}
	return &workOrder, nil
}
