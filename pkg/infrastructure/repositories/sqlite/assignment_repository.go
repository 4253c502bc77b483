package sqlite

import (
	"fmt"

	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/domain/entities"
	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/domain/repositories"
)

// AssignmentRepository provides SQLite-backed stage plan storage
type AssignmentRepository struct {
	db *DB
}

// NewAssignmentRepository creates an assignment repository over an open database
func NewAssignmentRepository(db *DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Verify interface compliance
var _ repositories.AssignmentRepository = (*AssignmentRepository)(nil)

// GetPlan returns the order's assignments in plan order. An order without a
// plan yields an empty slice.
func (r *AssignmentRepository) GetPlan(tenantID, orderID string) ([]*entities.WorkCenterAssignment, error) {
	rows, err := r.db.conn.Query(
		`SELECT id, order_id, work_center_id, stage, parallel
		 FROM assignments WHERE tenant_id = ? AND order_id = ? ORDER BY position`,
		tenantID, orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("query plan: %w", err)
	}
	defer rows.Close()

	assignments := []*entities.WorkCenterAssignment{}
	for rows.Next() {
		var (
			assignment entities.WorkCenterAssignment
			parallel   int
		)
		if err := rows.Scan(&assignment.ID, &assignment.OrderID, &assignment.WorkCenterID, &assignment.Stage, &parallel); err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		assignment.Parallel = parallel != 0
		assignments = append(assignments, &assignment)
	}
	return assignments, rows.Err()
}

// SavePlan stores the order's plan in one transaction, replacing any
// previous rows.
func (r *AssignmentRepository) SavePlan(tenantID, orderID string, assignments []*entities.WorkCenterAssignment) error {
	tx, err := r.db.conn.Begin()
	if err != nil {
		return fmt.Errorf("begin plan save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM assignments WHERE tenant_id = ? AND order_id = ?`, tenantID, orderID); err != nil {
		return fmt.Errorf("clear previous plan: %w", err)
	}

	for i, assignment := range assignments {
		parallel := 0
		if assignment.Parallel {
			parallel = 1
		}
		_, err := tx.Exec(
			`INSERT INTO assignments (id, tenant_id, order_id, work_center_id, stage, parallel, position)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			assignment.ID, tenantID, orderID, assignment.WorkCenterID, assignment.Stage, parallel, i,
		)
		if err != nil {
			return fmt.Errorf("insert assignment %s: %w", assignment.ID, err)
		}
	}

	return tx.Commit()
}
