package routing

import (
	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/domain/entities"
)

// TryComplete evaluates whether the order's execution plan is fully
// satisfied and returns the order status that should result, plus whether
// that is a change. It is invoked whenever a work order reaches completed,
// and is safe to re-run redundantly: an already-completed order yields
// (completed, false) rather than an error, which is what makes concurrent
// sibling completions safe without a global order lock.
//
// Stage satisfaction:
//   - An order with no plan completes once all of its work orders are
//     completed (and at least one exists).
//   - A stage containing any parallel assignment is satisfied only when all
//     of its assignments have a completed work order.
//   - A purely sequential stage is satisfied as soon as any one assignment
//     has a completed work order.
//
// The caller applies the transition: set status, stamp the actual-end time
// once, and fire the completion notification on a genuine change only.
func TryComplete(order *entities.ManufacturingOrder, assignments []*entities.WorkCenterAssignment, workOrders []*entities.WorkOrder) (entities.OrderStatus, bool) {
	if order.Status == entities.OrderCompleted {
		return entities.OrderCompleted, false
	}
	if order.Status != entities.OrderInProgress {
		// Orders complete only out of in_progress; a draft or cancelled
		// order never auto-completes.
		return order.Status, false
	}

	if len(assignments) == 0 {
		if !allWorkOrdersCompleted(workOrders) {
			return order.Status, false
		}
		return entities.OrderCompleted, true
	}

	ledger := NewLedger(workOrders)
	for _, g := range GroupByStage(assignments) {
		if g.HasParallel() {
			if !ledger.allCompleted(g) {
				return order.Status, false
			}
		} else if !ledger.anyCompleted(g) {
			return order.Status, false
		}
	}

	return entities.OrderCompleted, true
}

// allWorkOrdersCompleted is the no-plan fallback: every work order completed,
// and at least one work order exists to have done the producing.
func allWorkOrdersCompleted(workOrders []*entities.WorkOrder) bool {
	if len(workOrders) == 0 {
		return false
	}
	for _, wo := range workOrders {
		if wo.Status != entities.WorkOrderCompleted {
			return false
		}
	}
	return true
}

// ProducedQuantity derives the order's produced quantity from the ledger:
// the sum of completed quantities reported by the final stage's work orders,
// since the last operation is the one that yields finished units. Without a
// plan the largest single report wins, as unplanned work orders all describe
// the same output.
func ProducedQuantity(assignments []*entities.WorkCenterAssignment, workOrders []*entities.WorkOrder) entities.Quantity {
	if len(assignments) == 0 {
		var max entities.Quantity
		for _, wo := range workOrders {
			if wo.CompletedQty > max {
				max = wo.CompletedQty
			}
		}
		return max
	}

	groups := GroupByStage(assignments)
	final := groups[len(groups)-1]
	ledger := NewLedger(workOrders)

	var produced entities.Quantity
	for _, a := range final.Assignments {
		if wo, ok := ledger.ForAssignment(a.ID); ok && wo.Status == entities.WorkOrderCompleted {
			produced += wo.CompletedQty
		}
	}
	return produced
}
