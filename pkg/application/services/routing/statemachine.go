package routing

import (
	"fmt"
	"time"

	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/domain/entities"
)

// StatusUpdate is a partial mutation request against a work order. At least
// one field must be set; an empty update is rejected before any state is
// touched.
type StatusUpdate struct {
	Status       *entities.WorkOrderStatus
	CompletedQty *entities.Quantity
}

// Empty reports whether the update requests nothing
func (u StatusUpdate) Empty() bool {
	return u.Status == nil && u.CompletedQty == nil
}

// Outcome describes the observable effects of applying a status update
type Outcome struct {
	// Started is true when the work order entered in_progress from pending,
	// which is the point at which a draft parent order must advance.
	Started bool
	// Completed is true when the work order reached completed in this
	// update, which is the trigger for the completion cascade.
	Completed bool
}

// ApplyUpdate runs the work order state machine against a mutable copy of
// the work order. Legal transitions are pending -> in_progress -> completed
// with the in_progress <-> on_hold side branch; completed is terminal and
// reachable from any non-terminal state.
//
// Quantity-driven auto-completion takes precedence over the requested
// status: once the reported completed quantity reaches the planned quantity
// the work order is forced to completed and the quantity is clamped, even if
// the same update asked for a non-completing status. A completed quantity is
// always clamped to the planned quantity.
//
// ApplyUpdate mutates only the passed work order; persisting it, advancing a
// draft parent order and running the completion cascade are the caller's
// transaction.
func ApplyUpdate(wo *entities.WorkOrder, update StatusUpdate, now time.Time) (Outcome, error) {
	var outcome Outcome

	if update.Empty() {
		return outcome, fmt.Errorf("%w: update must set a status or a completed quantity", entities.ErrInvalidRequest)
	}
	if update.Status != nil && !update.Status.Valid() {
		return outcome, fmt.Errorf("%w: unknown work order status %q", entities.ErrInvalidRequest, *update.Status)
	}
	if update.CompletedQty != nil && *update.CompletedQty < 0 {
		return outcome, fmt.Errorf("%w: completed quantity cannot be negative, got %d", entities.ErrInvalidRequest, *update.CompletedQty)
	}
	if update.Status != nil && !legalTransition(wo.Status, *update.Status) {
		return outcome, fmt.Errorf("%w: cannot transition work order from %s to %s", entities.ErrInvalidRequest, wo.Status, *update.Status)
	}

	wasCompleted := wo.Status == entities.WorkOrderCompleted

	if update.CompletedQty != nil {
		wo.CompletedQty = *update.CompletedQty
		if wo.CompletedQty >= wo.PlannedQty {
			// Reaching the planned quantity forces completion regardless of
			// the requested status.
			wo.CompletedQty = wo.PlannedQty
			complete(wo, now)
		}
	}

	if update.Status != nil && wo.Status != entities.WorkOrderCompleted {
		switch *update.Status {
		case entities.WorkOrderInProgress:
			if wo.Status == entities.WorkOrderPending {
				outcome.Started = true
			}
			wo.Status = entities.WorkOrderInProgress
			if wo.ActualStart == nil {
				start := now
				wo.ActualStart = &start
			}
		case entities.WorkOrderCompleted:
			complete(wo, now)
		default:
			wo.Status = *update.Status
		}
	}

	outcome.Completed = !wasCompleted && wo.Status == entities.WorkOrderCompleted
	return outcome, nil
}

// complete moves the work order to completed, stamping the end time once and
// clamping the completed quantity to the planned quantity.
func complete(wo *entities.WorkOrder, now time.Time) {
	wo.Status = entities.WorkOrderCompleted
	if wo.ActualEnd == nil {
		end := now
		wo.ActualEnd = &end
	}
	if wo.CompletedQty > wo.PlannedQty {
		wo.CompletedQty = wo.PlannedQty
	}
}

// legalTransition encodes the work order state machine edges. A self
// transition is a no-op and always legal.
func legalTransition(from, to entities.WorkOrderStatus) bool {
	if from == to {
		return true
	}
	switch from {
	case entities.WorkOrderPending:
		return to == entities.WorkOrderInProgress || to == entities.WorkOrderCompleted
	case entities.WorkOrderInProgress:
		return to == entities.WorkOrderOnHold || to == entities.WorkOrderCompleted
	case entities.WorkOrderOnHold:
		return to == entities.WorkOrderInProgress || to == entities.WorkOrderCompleted
	default:
		// completed is terminal
		return false
	}
}
