// Package routing implements the execution-stage gating engine: the
// availability resolver that computes which work center assignments may be
// started, the completion cascade that decides when a manufacturing order has
// genuinely finished, and the work order status state machine.
//
// Everything in this package is a pure computation over immutable snapshots
// of the stage plan and the work order ledger. Callers fetch both, invoke the
// engine, and apply the result inside their own transaction; the engine holds
// no state of its own and is safe for any number of concurrent readers.
package routing

import (
	"fmt"
	"sort"

	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/domain/entities"
)

// StageGroup is the derived grouping of all assignments sharing one stage
// number. Stages are not stored; groups are rebuilt from the plan on every
// invocation and ordered ascending by stage number.
type StageGroup struct {
	Stage       int
	Assignments []*entities.WorkCenterAssignment
}

// HasParallel reports whether any assignment in the stage is parallel
func (g StageGroup) HasParallel() bool {
	for _, a := range g.Assignments {
		if a.Parallel {
			return true
		}
	}
	return false
}

// GroupByStage partitions a plan into stage groups sorted ascending by stage
// number. Assignment order within a group follows plan order.
func GroupByStage(assignments []*entities.WorkCenterAssignment) []StageGroup {
	byStage := make(map[int][]*entities.WorkCenterAssignment)
	for _, a := range assignments {
		byStage[a.Stage] = append(byStage[a.Stage], a)
	}

	groups := make([]StageGroup, 0, len(byStage))
	for stage, members := range byStage {
		groups = append(groups, StageGroup{Stage: stage, Assignments: members})
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Stage < groups[j].Stage
	})

	return groups
}

// Ledger indexes a snapshot of work orders by their assignment
type Ledger struct {
	byAssignment map[string]*entities.WorkOrder
}

// NewLedger builds a ledger index from a work order snapshot. At most one
// work order exists per assignment; a later duplicate would indicate corrupt
// storage and the first one wins.
func NewLedger(workOrders []*entities.WorkOrder) *Ledger {
	byAssignment := make(map[string]*entities.WorkOrder, len(workOrders))
	for _, wo := range workOrders {
		if _, exists := byAssignment[wo.AssignmentID]; !exists {
			byAssignment[wo.AssignmentID] = wo
		}
	}
	return &Ledger{byAssignment: byAssignment}
}

// ForAssignment returns the work order created against an assignment, if any
func (l *Ledger) ForAssignment(assignmentID string) (*entities.WorkOrder, bool) {
	wo, ok := l.byAssignment[assignmentID]
	return wo, ok
}

// Completed reports whether the assignment has a completed work order
func (l *Ledger) Completed(assignmentID string) bool {
	wo, ok := l.byAssignment[assignmentID]
	return ok && wo.Status == entities.WorkOrderCompleted
}

// allCompleted reports whether every assignment in the stage has a completed
// work order.
func (l *Ledger) allCompleted(g StageGroup) bool {
	for _, a := range g.Assignments {
		if !l.Completed(a.ID) {
			return false
		}
	}
	return true
}

// anyCompleted reports whether at least one assignment in the stage has a
// completed work order.
func (l *Ledger) anyCompleted(g StageGroup) bool {
	for _, a := range g.Assignments {
		if l.Completed(a.ID) {
			return true
		}
	}
	return false
}

// ValidateLedger checks that every work order in the snapshot references an
// assignment present in the plan. A dangling reference is a fatal
// data-integrity condition reported as ErrInvariantViolation. Orders without
// a plan are exempt: their work orders are not assignment-bound.
func ValidateLedger(assignments []*entities.WorkCenterAssignment, workOrders []*entities.WorkOrder) error {
	if len(assignments) == 0 {
		return nil
	}

	known := make(map[string]bool, len(assignments))
	for _, a := range assignments {
		known[a.ID] = true
	}
	for _, wo := range workOrders {
		if !known[wo.AssignmentID] {
			return fmt.Errorf("%w: work order %s references assignment %s missing from plan",
				entities.ErrInvariantViolation, wo.ID, wo.AssignmentID)
		}
	}
	return nil
}
