package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/domain/entities"
	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/infrastructure/planfile"
)

var planCmd = &cobra.Command{
	Use:   "plan <order-file.yaml>",
	Short: "Create an order and attach its stage plan from a YAML file",
	Long: `Create a manufacturing order from a YAML order file and attach its
stage plan in one step.

The order file names the part, the planned quantity, and optionally a plan:
a list of work center assignments with stage numbers. A file without a plan
section creates an unplanned order that executes through ad-hoc work orders.`,
	Args: cobra.ExactArgs(1),
	RunE: runPlan,
}

func runPlan(cmd *cobra.Command, args []string) error {
	file, err := planfile.Load(args[0])
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	order, err := app.Planning.CreateOrder(ctx, app.Tenant, entities.PartNumber(file.PartNumber), entities.Quantity(file.PlannedQty))
	if err != nil {
		return err
	}
	app.Logger.Info("order created", "order", order.ID, "part", order.PartNumber, "qty", order.PlannedQty)

	if len(file.Plan) > 0 {
		assignments, err := app.Planning.AttachPlan(ctx, app.Tenant, order.ID, file.Plan)
		if err != nil {
			return fmt.Errorf("order %s created but plan attachment failed: %w", order.ID, err)
		}

		fmt.Printf("Order %s (%s, qty %d)\n\n", order.ID, order.PartNumber, order.PlannedQty)
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

	fmt.Printf("Order %s (%s, qty %d), no plan attached\n", order.ID, order.PartNumber, order.PlannedQty)
	return nil
}

var cancelCmd = &cobra.Command{
	Use:   "cancel <order-id>",
	Short: "Cancel a draft order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		order, err := app.Planning.CancelOrder(cmd.Context(), app.Tenant, args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Order %s cancelled\n", order.ID)
		return nil
	},
}
