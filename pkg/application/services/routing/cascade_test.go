package routing

import (
	"testing"

	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/domain/entities"
)

func inProgressOrder() *entities.ManufacturingOrder {
	return &entities.ManufacturingOrder{
		ID:         "MO-1",
		TenantID:   "tenant-a",
		PartNumber: "PART123",
		PlannedQty: 10,
		Status:     entities.OrderInProgress,
	}
}

func TestTryComplete_NoPlanFallback(t *testing.T) {
	order := inProgressOrder()

	testCases := []struct {
		name       string
		workOrders []*entities.WorkOrder
		complete   bool
	}{
		{"no work orders at all", nil, false},
		{
			"one incomplete",
			[]*entities.WorkOrder{
				wo("A", entities.WorkOrderCompleted),
				wo("B", entities.WorkOrderInProgress),
			},
			false,
		},
		{
			"all completed",
			[]*entities.WorkOrder{
				wo("A", entities.WorkOrderCompleted),
				wo("B", entities.WorkOrderCompleted),
			},
			true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, changed := TryComplete(order, nil, tc.workOrders)
			if changed != tc.complete {
				t.Errorf("Expected changed=%v, got %v", tc.complete, changed)
			}
			wantStatus := entities.OrderInProgress
			if tc.complete {
				wantStatus = entities.OrderCompleted
			}
			if status != wantStatus {
				t.Errorf("Expected status %s, got %s", wantStatus, status)
			}
		})
	}
}

func TestTryComplete_ParallelStageNeedsAllMembers(t *testing.T) {
	order := inProgressOrder()
	plan := []*entities.WorkCenterAssignment{
		asn("A", 1, true),
		asn("B", 1, true),
	}

	// Only A completed: stage unsatisfied.
	status, changed := TryComplete(order, plan, []*entities.WorkOrder{
		wo("A", entities.WorkOrderCompleted),
	})
	if changed || status != entities.OrderInProgress {
		t.Errorf("Expected order to stay in_progress with one parallel member open, got %s changed=%v", status, changed)
	}

	// Both completed: stage satisfied.
	status, changed = TryComplete(order, plan, []*entities.WorkOrder{
		wo("A", entities.WorkOrderCompleted),
		wo("B", entities.WorkOrderCompleted),
	})
	if !changed || status != entities.OrderCompleted {
		t.Errorf("Expected completion with all parallel members done, got %s changed=%v", status, changed)
	}
}

func TestTryComplete_SequentialStageNeedsAnyMember(t *testing.T) {
	order := inProgressOrder()
	plan := []*entities.WorkCenterAssignment{
		asn("C", 1, false),
		asn("D", 1, false),
	}

	// D never started; C alone satisfies the sequential stage.
	status, changed := TryComplete(order, plan, []*entities.WorkOrder{
		wo("C", entities.WorkOrderCompleted),
	})
	if !changed || status != entities.OrderCompleted {
		t.Errorf("Expected one completed sequential member to satisfy the stage, got %s changed=%v", status, changed)
	}
}

func TestTryComplete_MixedStageAppliesStrictestRule(t *testing.T) {
	order := inProgressOrder()
	plan := []*entities.WorkCenterAssignment{
		asn("A", 1, true),
		asn("B", 1, false),
	}

	// The sequential member alone is not enough once the stage contains a
	// parallel member: all members must complete.
	status, changed := TryComplete(order, plan, []*entities.WorkOrder{
		wo("B", entities.WorkOrderCompleted),
	})
	if changed || status != entities.OrderInProgress {
		t.Errorf("Expected mixed stage to require all members, got %s changed=%v", status, changed)
	}

	status, changed = TryComplete(order, plan, []*entities.WorkOrder{
		wo("A", entities.WorkOrderCompleted),
		wo("B", entities.WorkOrderCompleted),
	})
	if !changed || status != entities.OrderCompleted {
		t.Errorf("Expected mixed stage satisfied once all members complete, got %s changed=%v", status, changed)
	}
}

func TestTryComplete_UnsatisfiedEarlyStageBlocks(t *testing.T) {
	order := inProgressOrder()
	plan := []*entities.WorkCenterAssignment{
		asn("A", 1, false),
		asn("B", 2, false),
	}

	// Stage 2 done but stage 1 untouched: not complete.
	status, changed := TryComplete(order, plan, []*entities.WorkOrder{
		wo("B", entities.WorkOrderCompleted),
	})
	if changed || status != entities.OrderInProgress {
		t.Errorf("Expected unsatisfied stage 1 to block completion, got %s changed=%v", status, changed)
	}
}

func TestTryComplete_Idempotent(t *testing.T) {
	order := inProgressOrder()
	plan := []*entities.WorkCenterAssignment{asn("A", 1, false)}
	ledger := []*entities.WorkOrder{wo("A", entities.WorkOrderCompleted)}

	status, changed := TryComplete(order, plan, ledger)
	if !changed || status != entities.OrderCompleted {
		t.Fatalf("Expected first evaluation to complete the order, got %s changed=%v", status, changed)
	}

	// Apply the transition, then re-run: same status, no change reported.
	order.Status = status
	status, changed = TryComplete(order, plan, ledger)
	if changed {
		t.Error("Expected re-running TryComplete on a completed order to be a no-op")
	}
	if status != entities.OrderCompleted {
		t.Errorf("Expected status to remain completed, got %s", status)
	}
}

func TestTryComplete_DraftOrderNeverCompletes(t *testing.T) {
	order := inProgressOrder()
	order.Status = entities.OrderDraft
	plan := []*entities.WorkCenterAssignment{asn("A", 1, false)}

	status, changed := TryComplete(order, plan, []*entities.WorkOrder{
		wo("A", entities.WorkOrderCompleted),
	})
	if changed || status != entities.OrderDraft {
		t.Errorf("Expected draft order to stay draft, got %s changed=%v", status, changed)
	}
}

func TestTryComplete_SpecScenario(t *testing.T) {
	// Plan: stage 1 {A, B} sequential, stage 2 {C, D} parallel.
	order := inProgressOrder()
	plan := []*entities.WorkCenterAssignment{
		asn("A", 1, false),
		asn("B", 1, false),
		asn("C", 2, true),
		asn("D", 2, true),
	}

	// A done, C done, D open: the parallel stage requires both.
	status, changed := TryComplete(order, plan, []*entities.WorkOrder{
		wo("A", entities.WorkOrderCompleted),
		wo("C", entities.WorkOrderCompleted),
	})
	if changed || status != entities.OrderInProgress {
		t.Errorf("Expected order to stay in_progress with D open, got %s changed=%v", status, changed)
	}

	// Completing D flips the order; B never started, but one completed
	// member satisfies the sequential stage 1.
	status, changed = TryComplete(order, plan, []*entities.WorkOrder{
		wo("A", entities.WorkOrderCompleted),
		wo("C", entities.WorkOrderCompleted),
		wo("D", entities.WorkOrderCompleted),
	})
	if !changed || status != entities.OrderCompleted {
		t.Errorf("Expected completion after D, got %s changed=%v", status, changed)
	}
}

func TestValidateLedger(t *testing.T) {
	plan := []*entities.WorkCenterAssignment{asn("A", 1, false)}

	if err := ValidateLedger(plan, []*entities.WorkOrder{wo("A", entities.WorkOrderPending)}); err != nil {
		t.Errorf("Expected valid ledger to pass, got %v", err)
	}

	err := ValidateLedger(plan, []*entities.WorkOrder{wo("GHOST", entities.WorkOrderPending)})
	if err == nil {
		t.Fatal("Expected dangling assignment reference to be rejected")
	}

	// No-plan orders are exempt: their work orders are not assignment-bound.
	if err := ValidateLedger(nil, []*entities.WorkOrder{wo("GHOST", entities.WorkOrderPending)}); err != nil {
		t.Errorf("Expected no-plan ledger to pass, got %v", err)
	}
}

// TestResolverCascadeConsistency checks that completion is never reachable
// through stages the resolver would not have offered: replaying any ledger
// that satisfies the cascade, completing work orders one at a time in stage
// order, every completed sequential assignment must have been eligible at the
// moment it was started, and parallel assignments are always startable.
func TestResolverCascadeConsistency(t *testing.T) {
	plans := [][]*entities.WorkCenterAssignment{
		{asn("A", 1, false), asn("B", 1, false), asn("C", 2, true), asn("D", 2, true)},
		{asn("A", 1, false), asn("B", 2, false), asn("C", 3, false)},
		{asn("A", 1, true), asn("B", 1, true), asn("C", 2, false)},
		{asn("A", 1, false), asn("B", 2, true), asn("C", 2, true), asn("D", 3, false)},
	}

	for _, plan := range plans {
		order := inProgressOrder()

		// Complete every assignment in stage order, verifying eligibility
		// just before each start.
		var ledger []*entities.WorkOrder
		for _, g := range GroupByStage(plan) {
			for _, a := range g.Assignments {
				eligible := Resolve(plan, ledger)
				found := false
				for _, e := range eligible {
					if e.ID == a.ID {
						found = true
						break
					}
				}
				if !found {
					t.Fatalf("Assignment %s (stage %d) not eligible when completion path needs it", a.ID, a.Stage)
				}
				ledger = append(ledger, wo(a.ID, entities.WorkOrderCompleted))
			}
		}

		status, changed := TryComplete(order, plan, ledger)
		if !changed || status != entities.OrderCompleted {
			t.Fatalf("Expected fully completed plan to complete the order, got %s changed=%v", status, changed)
		}
	}
}

func TestProducedQuantity(t *testing.T) {
	plan := []*entities.WorkCenterAssignment{
		asn("A", 1, false),
		asn("B", 2, true),
		asn("C", 2, true),
	}

	woWithQty := func(id string, qty entities.Quantity) *entities.WorkOrder {
		w := wo(id, entities.WorkOrderCompleted)
		w.CompletedQty = qty
		return w
	}

	ledger := []*entities.WorkOrder{
		woWithQty("A", 10),
		woWithQty("B", 4),
		woWithQty("C", 5),
	}

	// Final stage output counts; the upstream stage does not.
	if got := ProducedQuantity(plan, ledger); got != 9 {
		t.Errorf("Expected produced quantity 9 from final stage, got %d", got)
	}

	// Without a plan the largest single report wins.
	if got := ProducedQuantity(nil, ledger); got != 10 {
		t.Errorf("Expected produced quantity 10 without plan, got %d", got)
	}
}
