package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/domain/entities"
)

var startQty int64

var startableCmd = &cobra.Command{
	Use:   "startable <order-id>",
	Short: "List assignments eligible for a new work order",
	Long: `List the work center assignments of an order that can receive a work
order right now.

Parallel assignments are eligible as soon as the order exists; sequential
assignments unlock stage by stage as earlier stages progress.`,
	Args: cobra.ExactArgs(1),
	RunE: runStartable,
}

var startCmd = &cobra.Command{
	Use:   "start <order-id> [assignment-id]",
	Short: "Create a work order on an eligible assignment",
	Long: `Create a pending work order against an eligible assignment of the
order's plan.

For orders without a plan, omit the assignment ID to create an ad-hoc work
order. The planned quantity defaults to the order's planned quantity.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runStart,
}

func init() {
	startCmd.Flags().Int64Var(&startQty, "qty", 0, "Planned quantity (default: the order's planned quantity)")
}

func runStartable(cmd *cobra.Command, args []string) error {
	assignments, err := app.Execution.ListStartable(cmd.Context(), app.Tenant, args[0])
	if err != nil {
		return err
	}

	if len(assignments) == 0 {
		fmt.Println("No startable assignments")
		return nil
	}

	fmt.Printf("%-38s %-6s %-10s %-12s\n", "Assignment", "Stage", "Mode", "Work Center")
	for _, a := range assignments {
		mode := "sequential"
		if a.Parallel {
			mode = "parallel"
		}
		fmt.Printf("%-38s %-6d %-10s %-12s\n", a.ID, a.Stage, mode, a.WorkCenterID)
	}
	return nil
}

func runStart(cmd *cobra.Command, args []string) error {
	orderID := args[0]
	assignmentID := ""
	if len(args) == 2 {
		assignmentID = args[1]
	}

	qty := entities.Quantity(startQty)
	if qty <= 0 {
		order, err := app.Orders.GetOrder(app.Tenant, orderID)
		if err != nil {
			return err
		}
		qty = order.PlannedQty
	}

	workOrder, err := app.Execution.CreateWorkOrder(cmd.Context(), app.Tenant, orderID, assignmentID, qty)
	if err != nil {
		return err
	}

	app.Logger.Info("work order created", "work_order", workOrder.ID, "order", orderID, "assignment", assignmentID)
	fmt.Printf("Work order %s created (qty %d)\n", workOrder.ID, workOrder.PlannedQty)
	return nil
}
