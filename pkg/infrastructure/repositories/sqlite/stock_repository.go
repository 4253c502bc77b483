package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/domain/entities"
	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/domain/repositories"
)

// StockRepository provides a SQLite-backed append-only stock ledger.
// Quantities are stored as text to keep decimal precision exact.
type StockRepository struct {
	db *DB
}

// NewStockRepository creates a stock repository over an open database
func NewStockRepository(db *DB) *StockRepository {
	return &StockRepository{db: db}
}

// Verify interface compliance
var _ repositories.StockRepository = (*StockRepository)(nil)

// AppendEntry appends a ledger entry
func (r *StockRepository) AppendEntry(entry *entities.StockEntry) error {
	_, err := r.db.conn.Exec(
		`INSERT INTO stock_entries (id, tenant_id, part_number, movement, quantity, reference, posted_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.ID,
		entry.TenantID,
		string(entry.PartNumber),
		string(entry.Movement),
		entry.Quantity.String(),
		entry.Reference,
		entry.PostedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("append stock entry %s: %w", entry.ID, err)
	}
	return nil
}

// ListEntries returns a tenant's ledger entries for one part in posting order
func (r *StockRepository) ListEntries(tenantID string, partNumber entities.PartNumber) ([]*entities.StockEntry, error) {
	rows, err := r.db.conn.Query(
		`SELECT id, tenant_id, part_number, movement, quantity, reference, posted_at
		 FROM stock_entries WHERE tenant_id = ? AND part_number = ? ORDER BY posted_at, id`,
		tenantID, string(partNumber),
	)
	if err != nil {
		return nil, fmt.Errorf("query stock entries: %w", err)
	}
	defer rows.Close()

	var entries []*entities.StockEntry
	for rows.Next() {
		var (
			entry    entities.StockEntry
			part     string
			movement string
			quantity string
			postedAt string
		)
		if err := rows.Scan(&entry.ID, &entry.TenantID, &part, &movement, &quantity, &entry.Reference, &postedAt); err != nil {
			return nil, fmt.Errorf("scan stock entry: %w", err)
		}
		entry.PartNumber = entities.PartNumber(part)
		entry.Movement = entities.StockMovementType(movement)
		if entry.Quantity, err = decimal.NewFromString(quantity); err != nil {
			return nil, fmt.Errorf("parse stock quantity %q: %w", quantity, err)
		}
		if entry.PostedAt, err = time.Parse(time.RFC3339Nano, postedAt); err != nil {
			return nil, fmt.Errorf("parse posted_at %q: %w", postedAt, err)
		}
		entries = append(entries, &entry)
	}
	return entries, rows.Err()
}

// OnHand computes the net on-hand quantity from the ledger
func (r *StockRepository) OnHand(tenantID string, partNumber entities.PartNumber) (decimal.Decimal, error) {
	entries, err := r.ListEntries(tenantID, partNumber)
	if err != nil {
		return decimal.Zero, err
	}

	onHand := decimal.Zero
	for _, entry := range entries {
		switch entry.Movement {
		case entities.StockReceipt:
			onHand = onHand.Add(entry.Quantity)
		case entities.StockIssue:
			onHand = onHand.Sub(entry.Quantity)
		}
	}
	return onHand, nil
}

// ItemRepository provides SQLite-backed item master storage
type ItemRepository struct {
	db *DB
}

// NewItemRepository creates an item repository over an open database
func NewItemRepository(db *DB) *ItemRepository {
	return &ItemRepository{db: db}
}

// Verify interface compliance
var _ repositories.ItemRepository = (*ItemRepository)(nil)

// GetItem returns the item or ErrNotFound
func (r *ItemRepository) GetItem(tenantID string, partNumber entities.PartNumber) (*entities.Item, error) {
	row := r.db.conn.QueryRow(
		`SELECT part_number, description, unit_of_measure FROM items WHERE tenant_id = ? AND part_number = ?`,
		tenantID, string(partNumber),
	)

	var item entities.Item
	var part string
	err := row.Scan(&part, &item.Description, &item.UnitOfMeasure)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: item %s", entities.ErrNotFound, partNumber)
	}
	if err != nil {
		return nil, fmt.Errorf("query item %s: %w", partNumber, err)
	}
	item.PartNumber = entities.PartNumber(part)
	return &item, nil
}

// SaveItem inserts or replaces the item
func (r *ItemRepository) SaveItem(tenantID string, item *entities.Item) error {
	_, err := r.db.conn.Exec(
		`INSERT OR REPLACE INTO items (tenant_id, part_number, description, unit_of_measure) VALUES (?, ?, ?, ?)`,
		tenantID, string(item.PartNumber), item.Description, item.UnitOfMeasure,
	)
	if err != nil {
		return fmt.Errorf("save item %s: %w", item.PartNumber, err)
	}
	return nil
}

// WorkCenterRepository provides SQLite-backed work center storage
type WorkCenterRepository struct {
	db *DB
}

// NewWorkCenterRepository creates a work center repository over an open database
func NewWorkCenterRepository(db *DB) *WorkCenterRepository {
	return &WorkCenterRepository{db: db}
}

// Verify interface compliance
var _ repositories.WorkCenterRepository = (*WorkCenterRepository)(nil)

// GetWorkCenter returns the work center or ErrNotFound
func (r *WorkCenterRepository) GetWorkCenter(tenantID, workCenterID string) (*entities.WorkCenter, error) {
	row := r.db.conn.QueryRow(
		`SELECT id, tenant_id, name, description FROM work_centers WHERE tenant_id = ? AND id = ?`,
		tenantID, workCenterID,
	)

	var workCenter entities.WorkCenter
	err := row.Scan(&workCenter.ID, &workCenter.TenantID, &workCenter.Name, &workCenter.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: work center %s", entities.ErrNotFound, workCenterID)
	}
	if err != nil {
		return nil, fmt.Errorf("query work center %s: %w", workCenterID, err)
	}
	return &workCenter, nil
}

// ListWorkCenters returns all work centers of a tenant ordered by ID
func (r *WorkCenterRepository) ListWorkCenters(tenantID string) ([]*entities.WorkCenter, error) {
	rows, err := r.db.conn.Query(
		`SELECT id, tenant_id, name, description FROM work_centers WHERE tenant_id = ? ORDER BY id`,
		tenantID,
	)
	if err != nil {
		return nil, fmt.Errorf("query work centers: %w", err)
	}
	defer rows.Close()

	var workCenters []*entities.WorkCenter
	for rows.Next() {
		var workCenter entities.WorkCenter
		if err := rows.Scan(&workCenter.ID, &workCenter.TenantID, &workCenter.Name, &workCenter.Description); err != nil {
			return nil, fmt.Errorf("scan work center: %w", err)
		}
		workCenters = append(workCenters, &workCenter)
	}
	return workCenters, rows.Err()
}

// SaveWorkCenter inserts or replaces the work center
func (r *WorkCenterRepository) SaveWorkCenter(workCenter *entities.WorkCenter) error {
	_, err := r.db.conn.Exec(
		`INSERT OR REPLACE INTO work_centers (id, tenant_id, name, description) VALUES (?, ?, ?, ?)`,
		workCenter.ID, workCenter.TenantID, workCenter.Name, workCenter.Description,
	)
	if err != nil {
		return fmt.Errorf("save work center %s: %w", workCenter.ID, err)
	}
	return nil
}
