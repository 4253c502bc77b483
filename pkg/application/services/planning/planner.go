// Package planning manages manufacturing orders and their immutable stage
// plans: order creation, draft-only cancellation, and plan attachment with
// validation. Execution of attached plans lives in the execution package.
package planning

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/domain/entities"
	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/domain/repositories"
	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/infrastructure/events"
)

// AssignmentSpec describes one planned step before IDs are minted
type AssignmentSpec struct {
	WorkCenterID string `yaml:"work_center"`
	Stage        int    `yaml:"stage"`
	Parallel     bool   `yaml:"parallel"`
}

// Service manages orders and their stage plans
type Service struct {
	orders      repositories.OrderRepository
	plans       repositories.AssignmentRepository
	workCenters repositories.WorkCenterRepository
	eventStore  events.Store

	newID func() string
}

// NewService creates a planning service over the given repositories
func NewService(
	orders repositories.OrderRepository,
	plans repositories.AssignmentRepository,
	workCenters repositories.WorkCenterRepository,
	eventStore events.Store,
) *Service {
	return &Service{
		orders:      orders,
		plans:       plans,
		workCenters: workCenters,
		eventStore:  eventStore,
		newID:       func() string { return uuid.New().String() },
	}
}

// CreateOrder creates a draft manufacturing order
func (s *Service) CreateOrder(ctx context.Context, tenantID string, partNumber entities.PartNumber, plannedQty entities.Quantity) (*entities.ManufacturingOrder, error) {
	order, err := entities.NewManufacturingOrder(s.newID(), tenantID, partNumber, plannedQty)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entities.ErrInvalidRequest, err)
	}
	if err := s.orders.SaveOrder(order); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}
	return order, nil
}

// CancelOrder soft-cancels a draft order. Orders past draft can no longer be
// cancelled; they run to completion.
func (s *Service) CancelOrder(ctx context.Context, tenantID, orderID string) (*entities.ManufacturingOrder, error) {
	order, err := s.orders.GetOrder(tenantID, orderID)
	if err != nil {
		return nil, err
	}
	if !order.CanAdvanceTo(entities.OrderCancelled) {
		return nil, fmt.Errorf("%w: order %s is %s and can no longer be cancelled", entities.ErrInvalidRequest, orderID, order.Status)
	}
	order.Status = entities.OrderCancelled
	if err := s.orders.SaveOrder(order); err != nil {
		return nil, fmt.Errorf("failed to cancel order: %w", err)
	}
	return order, nil
}

// AttachPlan validates and persists the stage plan of a draft order. Plans
// are immutable once attached; reordering means creating a new order.
func (s *Service) AttachPlan(ctx context.Context, tenantID, orderID string, specs []AssignmentSpec) ([]*entities.WorkCenterAssignment, error) {
	order, err := s.orders.GetOrder(tenantID, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != entities.OrderDraft {
		return nil, fmt.Errorf("%w: order %s is %s; plans attach to draft orders only", entities.ErrInvalidRequest, orderID, order.Status)
	}

	existing, err := s.plans.GetPlan(tenantID, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load plan for order %s: %w", orderID, err)
	}
	if len(existing) > 0 {
		return nil, fmt.Errorf("%w: order %s already has a plan", entities.ErrInvalidRequest, orderID)
	}

	if err := ValidatePlan(specs); err != nil {
		return nil, err
	}

	assignments := make([]*entities.WorkCenterAssignment, 0, len(specs))
	for _, spec := range specs {
		if _, err := s.workCenters.GetWorkCenter(tenantID, spec.WorkCenterID); err != nil {
			return nil, err
		}
		assignment, err := entities.NewWorkCenterAssignment(s.newID(), orderID, spec.WorkCenterID, spec.Stage, spec.Parallel)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", entities.ErrInvalidRequest, err)
		}
		assignments = append(assignments, assignment)
	}

	if err := s.plans.SavePlan(tenantID, orderID, assignments); err != nil {
		return nil, fmt.Errorf("failed to save plan: %w", err)
	}

	attached := make([]entities.WorkCenterAssignment, len(assignments))
	for i, a := range assignments {
		attached[i] = *a
	}
	if err := s.eventStore.Append(orderID, events.NewPlanAttachedEvent(orderID, attached)); err != nil {
		return nil, fmt.Errorf("failed to record plan attachment: %w", err)
	}

	return assignments, nil
}

// GetPlan returns the immutable stage plan of an order
func (s *Service) GetPlan(ctx context.Context, tenantID, orderID string) ([]*entities.WorkCenterAssignment, error) {
	return s.plans.GetPlan(tenantID, orderID)
}

// ValidatePlan rejects empty plans, non-positive stages and stages mixing
// parallel and sequential assignments. Mixed stages have no well-defined
// gating semantics, so they are refused at plan-creation time rather than
// interpreted later.
func ValidatePlan(specs []AssignmentSpec) error {
	if len(specs) == 0 {
		return fmt.Errorf("%w: plan must contain at least one assignment", entities.ErrInvalidRequest)
	}

	parallelByStage := make(map[int]bool)
	sequentialByStage := make(map[int]bool)
	for _, spec := range specs {
		if spec.Stage <= 0 {
			return fmt.Errorf("%w: stage must be positive, got %d", entities.ErrInvalidRequest, spec.Stage)
		}
		if spec.WorkCenterID == "" {
			return fmt.Errorf("%w: work center cannot be empty", entities.ErrInvalidRequest)
		}
		if spec.Parallel {
			parallelByStage[spec.Stage] = true
		} else {
			sequentialByStage[spec.Stage] = true
		}
	}

	for stage := range parallelByStage {
		if sequentialByStage[stage] {
			return fmt.Errorf("%w: stage %d mixes parallel and sequential assignments", entities.ErrInvalidRequest, stage)
		}
	}
	return nil
}
