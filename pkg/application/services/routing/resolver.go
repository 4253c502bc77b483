package routing

import (
	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/domain/entities"
)

// Resolve computes the set of assignments eligible to receive a new work
// order given the current ledger snapshot. The result is advisory: the
// eligible set can go stale between computation and use, so work order
// creation must re-validate under the order's lock.
//
// Eligibility rules:
//   - An assignment that already has a work order, in any status, is never
//     eligible. Re-starting goes through the state machine, not the resolver.
//   - Parallel assignments are not stage-gated: every unstarted parallel
//     assignment is eligible regardless of stage progress.
//   - Sequential assignments unlock stage by stage. The first stage is always
//     unlocked. A later stage unlocks when every earlier stage is fully
//     completed, or when at least one assignment in the nearest earlier stage
//     has a completed work order. Scanning stops at the first stage that
//     satisfies neither rule; no later stage's sequential work is eligible.
//
// The result is ordered by stage ascending. An empty plan yields an empty
// result: no plan means nothing to gate.
func Resolve(assignments []*entities.WorkCenterAssignment, workOrders []*entities.WorkOrder) []*entities.WorkCenterAssignment {
	groups := GroupByStage(assignments)
	ledger := NewLedger(workOrders)

	// Walk stages to find how far sequential work has unlocked.
	unlockedThrough := -1
	allEarlierComplete := true
	for i, g := range groups {
		if i > 0 {
			nearest := groups[i-1]
			if !allEarlierComplete && !ledger.anyCompleted(nearest) {
				break
			}
		}
		unlockedThrough = i
		allEarlierComplete = allEarlierComplete && ledger.allCompleted(g)
	}

	var eligible []*entities.WorkCenterAssignment
	for i, g := range groups {
		for _, a := range g.Assignments {
			if _, started := ledger.ForAssignment(a.ID); started {
				continue
			}
			if a.Parallel || i <= unlockedThrough {
				eligible = append(eligible, a)
			}
		}
	}

	return eligible
}
