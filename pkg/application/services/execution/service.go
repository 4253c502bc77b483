// Package execution hosts the single mutation entry point of the gating
// engine. Work order creation and status updates run here, each as one
// atomic read-modify-write serialized on the owning manufacturing order,
// with the pure routing computations (resolver, state machine, cascade)
// applied to snapshots inside that critical section.
package execution

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/application/dto"
	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/application/services/routing"
	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/domain/entities"
	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/domain/repositories"
	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/infrastructure/events"
)

// Service coordinates work order execution for manufacturing orders
type Service struct {
	orders     repositories.OrderRepository
	plans      repositories.AssignmentRepository
	workOrders repositories.WorkOrderRepository
	eventStore events.Store
	locks      *orderLocks

	// now and newID are injectable for tests
	now   func() time.Time
	newID func() string
}

// NewService creates an execution service over the given repositories
func NewService(
	orders repositories.OrderRepository,
	plans repositories.AssignmentRepository,
	workOrders repositories.WorkOrderRepository,
	eventStore events.Store,
) *Service {
	return &Service{
		orders:     orders,
		plans:      plans,
		workOrders: workOrders,
		eventStore: eventStore,
		locks:      newOrderLocks(),
		now:        time.Now,
		newID:      func() string { return uuid.New().String() },
	}
}

// ListStartable returns the assignments eligible to receive a new work order
// right now. The result is advisory: CreateWorkOrder re-validates under the
// order lock because the eligible set can go stale between computation and
// use.
func (s *Service) ListStartable(ctx context.Context, tenantID, orderID string) ([]*entities.WorkCenterAssignment, error) {
	if _, err := s.getOrder(tenantID, orderID); err != nil {
		return nil, err
	}
	plan, workOrders, err := s.snapshot(tenantID, orderID)
	if err != nil {
		return nil, err
	}
	return routing.Resolve(plan, workOrders), nil
}

// CreateWorkOrder creates a pending work order against an eligible
// assignment. For orders without a plan, assignmentID must be empty and the
// work order is unplanned. Eligibility is checked atomically under the order
// lock.
func (s *Service) CreateWorkOrder(ctx context.Context, tenantID, orderID, assignmentID string, plannedQty entities.Quantity) (*entities.WorkOrder, error) {
	lock := s.locks.forOrder(orderID)
	lock.Lock()
	defer lock.Unlock()

	order, err := s.getOrder(tenantID, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status == entities.OrderCompleted || order.Status == entities.OrderCancelled {
		return nil, fmt.Errorf("%w: order %s is %s", entities.ErrInvalidRequest, orderID, order.Status)
	}

	plan, workOrders, err := s.snapshot(tenantID, orderID)
	if err != nil {
		return nil, err
	}

	if len(plan) == 0 {
		if assignmentID != "" {
			return nil, fmt.Errorf("%w: assignment %s does not exist for order %s", entities.ErrNotFound, assignmentID, orderID)
		}
	} else {
		if assignmentID == "" {
			return nil, fmt.Errorf("%w: order %s has a plan; an assignment is required", entities.ErrInvalidRequest, orderID)
		}
		if err := s.checkEligible(plan, workOrders, assignmentID, orderID); err != nil {
			return nil, err
		}
	}

	var workOrder *entities.WorkOrder
	if assignmentID == "" {
		// Unplanned work orders carry no assignment reference.
		if plannedQty <= 0 {
			return nil, fmt.Errorf("%w: planned quantity must be positive, got %d", entities.ErrInvalidRequest, plannedQty)
		}
		workOrder = &entities.WorkOrder{
			ID:         s.newID(),
			TenantID:   tenantID,
			OrderID:    orderID,
			Status:     entities.WorkOrderPending,
			PlannedQty: plannedQty,
		}
	} else {
		var err error
		workOrder, err = entities.NewWorkOrder(s.newID(), tenantID, orderID, assignmentID, plannedQty)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", entities.ErrInvalidRequest, err)
		}
	}

	if err := s.workOrders.SaveWorkOrder(workOrder); err != nil {
		return nil, fmt.Errorf("failed to save work order: %w", err)
	}
	if err := s.eventStore.Append(orderID, events.NewWorkOrderCreatedEvent(*workOrder)); err != nil {
		return nil, fmt.Errorf("failed to record work order creation: %w", err)
	}

	return workOrder, nil
}

// UpdateWorkOrderStatus applies a status/quantity update to a work order and
// runs the completion cascade when the update completes it. The whole
// read-modify-write executes under the owning order's lock; two sibling work
// orders completing concurrently run their cascade evaluations serially, and
// the cascade itself is idempotent, so the parent order flips exactly once.
func (s *Service) UpdateWorkOrderStatus(ctx context.Context, tenantID, workOrderID string, update routing.StatusUpdate) (*dto.WorkOrderUpdateResult, error) {
	if update.Empty() {
		return nil, fmt.Errorf("%w: update must set a status or a completed quantity", entities.ErrInvalidRequest)
	}

	// Locate the work order first to learn its owning order, then redo the
	// read under that order's lock.
	located, err := s.workOrders.GetWorkOrder(tenantID, workOrderID)
	if err != nil {
		return nil, err
	}

	lock := s.locks.forOrder(located.OrderID)
	lock.Lock()
	defer lock.Unlock()

	workOrder, err := s.workOrders.GetWorkOrder(tenantID, workOrderID)
	if err != nil {
		return nil, err
	}
	order, err := s.getOrder(tenantID, workOrder.OrderID)
	if err != nil {
		return nil, err
	}

	plan, workOrders, err := s.snapshot(tenantID, workOrder.OrderID)
	if err != nil {
		return nil, err
	}
	if err := routing.ValidateLedger(plan, workOrders); err != nil {
		return nil, err
	}

	oldStatus := workOrder.Status
	now := s.now()
	outcome, err := routing.ApplyUpdate(workOrder, update, now)
	if err != nil {
		return nil, err
	}

	if err := s.workOrders.SaveWorkOrder(workOrder); err != nil {
		return nil, fmt.Errorf("failed to save work order: %w", err)
	}
	if workOrder.Status != oldStatus {
		if err := s.eventStore.Append(order.ID, events.NewWorkOrderStatusChangedEvent(*workOrder, oldStatus)); err != nil {
			return nil, fmt.Errorf("failed to record status change: %w", err)
		}
	}

	result := &dto.WorkOrderUpdateResult{WorkOrder: workOrder}

	if outcome.Started && order.Status == entities.OrderDraft {
		order.Status = entities.OrderInProgress
		if order.ActualStart == nil {
			start := now
			order.ActualStart = &start
		}
		if err := s.orders.SaveOrder(order); err != nil {
			return nil, fmt.Errorf("failed to start order: %w", err)
		}
		if err := s.eventStore.Append(order.ID, events.NewOrderStartedEvent(*order)); err != nil {
			return nil, fmt.Errorf("failed to record order start: %w", err)
		}
		result.Order = order
	}

	if outcome.Completed {
		completed, err := s.cascade(order, plan, workOrder, workOrders, now)
		if err != nil {
			return nil, err
		}
		if completed {
			result.OrderCompleted = true
			result.Order = order
		}
	}

	return result, nil
}

// cascade re-evaluates plan satisfaction with the freshly updated work order
// folded into the snapshot and, if the whole plan is satisfied, transitions
// the order to completed. Fires the completion notification only on a
// genuine transition.
func (s *Service) cascade(
	order *entities.ManufacturingOrder,
	plan []*entities.WorkCenterAssignment,
	updated *entities.WorkOrder,
	workOrders []*entities.WorkOrder,
	now time.Time,
) (bool, error) {
	for i, wo := range workOrders {
		if wo.ID == updated.ID {
			workOrders[i] = updated
		}
	}

	status, changed := routing.TryComplete(order, plan, workOrders)
	if !changed {
		return false, nil
	}

	order.Status = status
	if order.ActualEnd == nil {
		end := now
		order.ActualEnd = &end
	}
	order.ProducedQty = routing.ProducedQuantity(plan, workOrders)

	if err := s.orders.SaveOrder(order); err != nil {
		return false, fmt.Errorf("failed to complete order: %w", err)
	}
	if err := s.eventStore.Append(order.ID, events.NewOrderCompletedEvent(*order)); err != nil {
		return false, fmt.Errorf("failed to record order completion: %w", err)
	}
	return true, nil
}

// Progress assembles the stage-by-stage progress report for an order
func (s *Service) Progress(ctx context.Context, tenantID, orderID string) (*dto.OrderProgress, error) {
	order, err := s.getOrder(tenantID, orderID)
	if err != nil {
		return nil, err
	}
	plan, workOrders, err := s.snapshot(tenantID, orderID)
	if err != nil {
		return nil, err
	}

	progress := &dto.OrderProgress{Order: order}

	if len(plan) == 0 {
		progress.Unplanned = workOrders
		return progress, nil
	}

	ledger := routing.NewLedger(workOrders)
	eligible := make(map[string]bool)
	for _, a := range routing.Resolve(plan, workOrders) {
		eligible[a.ID] = true
	}

	for _, group := range routing.GroupByStage(plan) {
		stage := dto.StageProgress{
			Stage:     group.Stage,
			Parallel:  group.HasParallel(),
			Satisfied: stageSatisfied(group, ledger),
		}
		for _, a := range group.Assignments {
			wo, _ := ledger.ForAssignment(a.ID)
			stage.Assignments = append(stage.Assignments, dto.AssignmentProgress{
				Assignment: a,
				WorkOrder:  wo,
				Eligible:   eligible[a.ID],
			})
		}
		progress.Stages = append(progress.Stages, stage)
	}

	return progress, nil
}

// stageSatisfied mirrors the cascade's stage rule for reporting
func stageSatisfied(group routing.StageGroup, ledger *routing.Ledger) bool {
	if group.HasParallel() {
		for _, a := range group.Assignments {
			if !ledger.Completed(a.ID) {
				return false
			}
		}
		return true
	}
	for _, a := range group.Assignments {
		if ledger.Completed(a.ID) {
			return true
		}
	}
	return false
}

// checkEligible verifies the assignment exists, is unused and is currently
// offered by the resolver.
func (s *Service) checkEligible(
	plan []*entities.WorkCenterAssignment,
	workOrders []*entities.WorkOrder,
	assignmentID, orderID string,
) error {
	var assignment *entities.WorkCenterAssignment
	for _, a := range plan {
		if a.ID == assignmentID {
			assignment = a
			break
		}
	}
	if assignment == nil {
		return fmt.Errorf("%w: assignment %s does not exist for order %s", entities.ErrNotFound, assignmentID, orderID)
	}

	ledger := routing.NewLedger(workOrders)
	if _, used := ledger.ForAssignment(assignmentID); used {
		return fmt.Errorf("%w: assignment %s already has a work order", entities.ErrInvalidRequest, assignmentID)
	}

	for _, a := range routing.Resolve(plan, workOrders) {
		if a.ID == assignmentID {
			return nil
		}
	}
	return fmt.Errorf("%w: assignment %s is not startable yet", entities.ErrInvalidRequest, assignmentID)
}

func (s *Service) getOrder(tenantID, orderID string) (*entities.ManufacturingOrder, error) {
	return s.orders.GetOrder(tenantID, orderID)
}

func (s *Service) snapshot(tenantID, orderID string) ([]*entities.WorkCenterAssignment, []*entities.WorkOrder, error) {
	plan, err := s.plans.GetPlan(tenantID, orderID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load plan for order %s: %w", orderID, err)
	}
	workOrders, err := s.workOrders.ListWorkOrders(tenantID, orderID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load work orders for order %s: %w", orderID, err)
	}
	return plan, workOrders, nil
}
