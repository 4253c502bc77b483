package routing

import (
	"testing"

	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/domain/entities"
)

func asn(id string, stage int, parallel bool) *entities.WorkCenterAssignment {
	return &entities.WorkCenterAssignment{
		ID:           id,
		OrderID:      "MO-1",
		WorkCenterID: "WC-" + id,
		Stage:        stage,
		Parallel:     parallel,
	}
}

func wo(assignmentID string, status entities.WorkOrderStatus) *entities.WorkOrder {
	return &entities.WorkOrder{
		ID:           "WO-" + assignmentID,
		TenantID:     "tenant-a",
		OrderID:      "MO-1",
		AssignmentID: assignmentID,
		Status:       status,
		PlannedQty:   10,
	}
}

func eligibleIDs(assignments []*entities.WorkCenterAssignment, workOrders []*entities.WorkOrder) []string {
	var ids []string
	for _, a := range Resolve(assignments, workOrders) {
		ids = append(ids, a.ID)
	}
	return ids
}

func assertIDs(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("Expected eligible %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected eligible %v, got %v", want, got)
		}
	}
}

func TestResolve_EmptyPlan(t *testing.T) {
	if got := Resolve(nil, nil); len(got) != 0 {
		t.Errorf("Expected empty result for empty plan, got %d assignments", len(got))
	}
}

func TestResolve_FirstStageAlwaysEligible(t *testing.T) {
	plan := []*entities.WorkCenterAssignment{
		asn("A", 1, false),
		asn("B", 1, false),
		asn("C", 2, false),
	}

	assertIDs(t, eligibleIDs(plan, nil), []string{"A", "B"})
}

func TestResolve_StartedAssignmentNeverEligible(t *testing.T) {
	plan := []*entities.WorkCenterAssignment{
		asn("A", 1, false),
		asn("B", 1, false),
	}

	testCases := []struct {
		name   string
		status entities.WorkOrderStatus
	}{
		{"pending", entities.WorkOrderPending},
		{"in_progress", entities.WorkOrderInProgress},
		{"on_hold", entities.WorkOrderOnHold},
		{"completed", entities.WorkOrderCompleted},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ledger := []*entities.WorkOrder{wo("A", tc.status)}
			got := eligibleIDs(plan, ledger)
			for _, id := range got {
				if id == "A" {
					t.Errorf("Assignment with %s work order must not be eligible", tc.status)
				}
			}
		})
	}
}

func TestResolve_OneCompletedSiblingUnlocksNextStage(t *testing.T) {
	plan := []*entities.WorkCenterAssignment{
		asn("A", 1, false),
		asn("B", 1, false),
		asn("C", 2, false),
	}

	// B still pending, but A's completion alone unlocks stage 2.
	ledger := []*entities.WorkOrder{
		wo("A", entities.WorkOrderCompleted),
		wo("B", entities.WorkOrderPending),
	}

	assertIDs(t, eligibleIDs(plan, ledger), []string{"C"})
}

func TestResolve_InProgressDoesNotUnlockNextStage(t *testing.T) {
	plan := []*entities.WorkCenterAssignment{
		asn("A", 1, false),
		asn("C", 2, false),
	}

	ledger := []*entities.WorkOrder{wo("A", entities.WorkOrderInProgress)}

	if got := eligibleIDs(plan, ledger); len(got) != 0 {
		t.Errorf("Expected nothing eligible while stage 1 is in progress, got %v", got)
	}
}

func TestResolve_ScanStopsAtFirstGatedStage(t *testing.T) {
	plan := []*entities.WorkCenterAssignment{
		asn("A", 1, false),
		asn("B", 2, false),
		asn("C", 3, false),
	}

	// Stage 1 complete unlocks stage 2; stage 2 untouched, so stage 3 stays
	// locked even though its nearest predecessor check would only look at
	// stage 2.
	ledger := []*entities.WorkOrder{wo("A", entities.WorkOrderCompleted)}

	assertIDs(t, eligibleIDs(plan, ledger), []string{"B"})
}

func TestResolve_ParallelAssignmentsAreNotStageGated(t *testing.T) {
	plan := []*entities.WorkCenterAssignment{
		asn("A", 1, false),
		asn("P1", 2, true),
		asn("P2", 3, true),
	}

	// No work has happened at all, yet every parallel assignment is
	// startable alongside stage 1.
	assertIDs(t, eligibleIDs(plan, nil), []string{"A", "P1", "P2"})
}

func TestResolve_LaterStagesUnlockAsWorkCompletes(t *testing.T) {
	plan := []*entities.WorkCenterAssignment{
		asn("A", 1, false),
		asn("B", 2, false),
		asn("C", 3, false),
	}

	ledger := []*entities.WorkOrder{
		wo("A", entities.WorkOrderCompleted),
		wo("B", entities.WorkOrderCompleted),
	}

	assertIDs(t, eligibleIDs(plan, ledger), []string{"C"})
}

func TestResolve_SpecScenario(t *testing.T) {
	// Plan: stage 1 {A, B} sequential, stage 2 {C, D} parallel.
	plan := []*entities.WorkCenterAssignment{
		asn("A", 1, false),
		asn("B", 1, false),
		asn("C", 2, true),
		asn("D", 2, true),
	}

	// Initially everything unstarted: A and B are startable, and C and D are
	// startable too because parallel work is never stage-gated.
	assertIDs(t, eligibleIDs(plan, nil), []string{"A", "B", "C", "D"})

	// Completing A alone leaves B startable and keeps C, D available.
	ledger := []*entities.WorkOrder{wo("A", entities.WorkOrderCompleted)}
	assertIDs(t, eligibleIDs(plan, ledger), []string{"B", "C", "D"})
}
