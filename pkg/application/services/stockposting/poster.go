// Package stockposting turns order completions into stock ledger receipts.
// It subscribes to the completion event stream so that the execution engine
// stays unaware of inventory entirely.
package stockposting

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/domain/entities"
	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/domain/repositories"
	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/infrastructure/events"
)

// Poster posts finished goods receipts for completed manufacturing orders
type Poster struct {
	stock      repositories.StockRepository
	eventStore events.Store

	newID func() string
}

// NewPoster creates a stock poster writing to the given ledger
func NewPoster(stock repositories.StockRepository, eventStore events.Store) *Poster {
	return &Poster{
		stock:      stock,
		eventStore: eventStore,
		newID:      func() string { return uuid.New().String() },
	}
}

// Register subscribes the poster to order completion events
func (p *Poster) Register(store events.Store) {
	store.Subscribe([]string{events.OrderCompletedEvent}, p.handle)
}

func (p *Poster) handle(event events.Event) error {
	completed, ok := event.Data.(events.OrderCompleted)
	if !ok {
		return fmt.Errorf("unexpected payload for %s event: %T", event.Type, event.Data)
	}
	return p.PostCompletion(&completed.Order)
}

// PostCompletion appends a receipt for the order's produced quantity.
// Orders that completed without reporting any output post nothing.
func (p *Poster) PostCompletion(order *entities.ManufacturingOrder) error {
	if order.ProducedQty <= 0 {
		return nil
	}

	quantity := decimal.NewFromInt(int64(order.ProducedQty))
	entry, err := entities.NewStockEntry(p.newID(), order.TenantID, order.PartNumber, entities.StockReceipt, quantity, order.ID)
	if err != nil {
		return fmt.Errorf("failed to build stock entry for order %s: %w", order.ID, err)
	}
	if err := p.stock.AppendEntry(entry); err != nil {
		return fmt.Errorf("failed to post stock for order %s: %w", order.ID, err)
	}
	return p.eventStore.Append(string(entry.PartNumber), events.NewStockPostedEvent(*entry))
}
