package sqlite

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/domain/entities"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "erp.db"))
	require.NoError(t, err)
	require.NoError(t, db.Migrate())
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Migrate())
}

func TestOrderRepository_RoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewOrderRepository(db)

	order, err := entities.NewManufacturingOrder("MO-1", "tenant-a", "PART123", 10)
	require.NoError(t, err)
	start := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
	order.Status = entities.OrderInProgress
	order.ActualStart = &start

	require.NoError(t, repo.SaveOrder(order))

	fetched, err := repo.GetOrder("tenant-a", "MO-1")
	require.NoError(t, err)
	assert.Equal(t, order.PartNumber, fetched.PartNumber)
	assert.Equal(t, entities.OrderInProgress, fetched.Status)
	require.NotNil(t, fetched.ActualStart)
	assert.True(t, fetched.ActualStart.Equal(start))
	assert.Nil(t, fetched.ActualEnd)

	// Foreign tenant sees nothing.
	_, err = repo.GetOrder("tenant-b", "MO-1")
	assert.True(t, errors.Is(err, entities.ErrNotFound))
}

func TestAssignmentRepository_RoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewAssignmentRepository(db)

	plan := []*entities.WorkCenterAssignment{
		{ID: "AS-1", OrderID: "MO-1", WorkCenterID: "WC-MILL", Stage: 1, Parallel: false},
		{ID: "AS-2", OrderID: "MO-1", WorkCenterID: "WC-TURN", Stage: 2, Parallel: true},
	}
	require.NoError(t, repo.SavePlan("tenant-a", "MO-1", plan))

	fetched, err := repo.GetPlan("tenant-a", "MO-1")
	require.NoError(t, err)
	require.Len(t, fetched, 2)
	assert.Equal(t, "AS-1", fetched[0].ID)
	assert.False(t, fetched[0].Parallel)
	assert.Equal(t, "AS-2", fetched[1].ID)
	assert.True(t, fetched[1].Parallel)

	// Missing plan is empty, not an error.
	empty, err := repo.GetPlan("tenant-a", "MO-2")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestWorkOrderRepository_RoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewWorkOrderRepository(db)

	workOrder, err := entities.NewWorkOrder("WO-1", "tenant-a", "MO-1", "AS-1", 10)
	require.NoError(t, err)
	workOrder.Status = entities.WorkOrderCompleted
	workOrder.CompletedQty = 10
	end := time.Date(2026, 4, 1, 16, 0, 0, 0, time.UTC)
	workOrder.ActualEnd = &end

	require.NoError(t, repo.SaveWorkOrder(workOrder))

	fetched, err := repo.GetWorkOrder("tenant-a", "WO-1")
	require.NoError(t, err)
	assert.Equal(t, entities.WorkOrderCompleted, fetched.Status)
	assert.Equal(t, entities.Quantity(10), fetched.CompletedQty)
	require.NotNil(t, fetched.ActualEnd)
	assert.True(t, fetched.ActualEnd.Equal(end))

	listed, err := repo.ListWorkOrders("tenant-a", "MO-1")
	require.NoError(t, err)
	require.Len(t, listed, 1)

	_, err = repo.GetWorkOrder("tenant-a", "WO-404")
	assert.True(t, errors.Is(err, entities.ErrNotFound))
}

func TestStockRepository_RoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewStockRepository(db)

	receipt, err := entities.NewStockEntry("SE-1", "tenant-a", "PART123", entities.StockReceipt, decimal.RequireFromString("10.25"), "MO-1")
	require.NoError(t, err)
	issue, err := entities.NewStockEntry("SE-2", "tenant-a", "PART123", entities.StockIssue, decimal.NewFromInt(3), "SO-9")
	require.NoError(t, err)

	require.NoError(t, repo.AppendEntry(receipt))
	require.NoError(t, repo.AppendEntry(issue))

	entries, err := repo.ListEntries("tenant-a", "PART123")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.True(t, entries[0].Quantity.Equal(decimal.RequireFromString("10.25")))

	onHand, err := repo.OnHand("tenant-a", "PART123")
	require.NoError(t, err)
	assert.True(t, onHand.Equal(decimal.RequireFromString("7.25")))
}

func TestWorkCenterAndItemRepositories(t *testing.T) {
	db := openTestDB(t)
	workCenters := NewWorkCenterRepository(db)
	items := NewItemRepository(db)

	workCenter, err := entities.NewWorkCenter("WC-MILL", "tenant-a", "Milling")
	require.NoError(t, err)
	require.NoError(t, workCenters.SaveWorkCenter(workCenter))

	fetched, err := workCenters.GetWorkCenter("tenant-a", "WC-MILL")
	require.NoError(t, err)
	assert.Equal(t, "Milling", fetched.Name)

	listed, err := workCenters.ListWorkCenters("tenant-a")
	require.NoError(t, err)
	require.Len(t, listed, 1)

	item := &entities.Item{PartNumber: "PART123", Description: "Widget", UnitOfMeasure: "EA"}
	require.NoError(t, items.SaveItem("tenant-a", item))

	fetchedItem, err := items.GetItem("tenant-a", "PART123")
	require.NoError(t, err)
	assert.Equal(t, "Widget", fetchedItem.Description)

	_, err = items.GetItem("tenant-a", "PART404")
	assert.True(t, errors.Is(err, entities.ErrNotFound))
}
