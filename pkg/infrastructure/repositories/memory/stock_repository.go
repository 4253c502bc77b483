package memory

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/domain/entities"
	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/domain/repositories"
)

// StockRepository provides an in-memory append-only stock ledger
type StockRepository struct {
	mu      sync.RWMutex
	entries []entities.StockEntry
}

// NewStockRepository creates a new in-memory stock repository
func NewStockRepository() *StockRepository {
	return &StockRepository{}
}

// Verify interface compliance
var _ repositories.StockRepository = (*StockRepository)(nil)

// AppendEntry appends a ledger entry; the ledger is never rewritten
func (r *StockRepository) AppendEntry(entry *entities.StockEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, *entry)
	return nil
}

// ListEntries returns a tenant's ledger entries for one part in posting order
func (r *StockRepository) ListEntries(tenantID string, partNumber entities.PartNumber) ([]*entities.StockEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var entries []*entities.StockEntry
	for i := range r.entries {
		entry := r.entries[i]
		if entry.TenantID == tenantID && entry.PartNumber == partNumber {
			entries = append(entries, &entry)
		}
	}
	return entries, nil
}

// OnHand computes the net on-hand quantity from the ledger
func (r *StockRepository) OnHand(tenantID string, partNumber entities.PartNumber) (decimal.Decimal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	onHand := decimal.Zero
	for i := range r.entries {
		entry := &r.entries[i]
		if entry.TenantID != tenantID || entry.PartNumber != partNumber {
			continue
		}
		switch entry.Movement {
		case entities.StockReceipt:
			onHand = onHand.Add(entry.Quantity)
		case entities.StockIssue:
			onHand = onHand.Sub(entry.Quantity)
		}
	}
	return onHand, nil
}

// ItemRepository provides in-memory item master storage
type ItemRepository struct {
	mu    sync.RWMutex
	items map[string]entities.Item // keyed by tenant+part number
}

// NewItemRepository creates a new in-memory item repository
func NewItemRepository() *ItemRepository {
	return &ItemRepository{items: make(map[string]entities.Item)}
}

// Verify interface compliance
var _ repositories.ItemRepository = (*ItemRepository)(nil)

// GetItem returns a copy of the item or ErrNotFound
func (r *ItemRepository) GetItem(tenantID string, partNumber entities.PartNumber) (*entities.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[orderKey(tenantID, string(partNumber))]
	if !ok {
		return nil, fmt.Errorf("%w: item %s", entities.ErrNotFound, partNumber)
	}
	return &item, nil
}

// SaveItem stores a copy of the item
func (r *ItemRepository) SaveItem(tenantID string, item *entities.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[orderKey(tenantID, string(item.PartNumber))] = *item
	return nil
}
