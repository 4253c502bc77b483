package repositories

import (
	"github.com/shopspring/decimal"

	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/domain/entities"
)

// StockRepository provides access to the append-only stock ledger
type StockRepository interface {
	AppendEntry(entry *entities.StockEntry) error
	ListEntries(tenantID string, partNumber entities.PartNumber) ([]*entities.StockEntry, error)
	OnHand(tenantID string, partNumber entities.PartNumber) (decimal.Decimal, error)
}

// ItemRepository provides access to item master data
type ItemRepository interface {
	GetItem(tenantID string, partNumber entities.PartNumber) (*entities.Item, error)
	SaveItem(tenantID string, item *entities.Item) error
}
