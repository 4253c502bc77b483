package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/application/services/routing"
	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/domain/entities"
)

var (
	updateStatus string
	updateQty    int64
)

var updateCmd = &cobra.Command{
	Use:   "update <work-order-id>",
	Short: "Update a work order's status or completed quantity",
	Long: `Update a work order. At least one of --status and --qty must be given.

Reporting a completed quantity at or above the planned quantity completes
the work order regardless of the requested status. Completing the last
gating work order of an order completes the order itself and posts the
produced quantity to stock.`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().StringVar(&updateStatus, "status", "", "New status: pending, in_progress, completed, on_hold")
	updateCmd.Flags().Int64Var(&updateQty, "qty", -1, "Completed quantity reported so far")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	var update routing.StatusUpdate
	if updateStatus != "" {
		status := entities.WorkOrderStatus(updateStatus)
		update.Status = &status
	}
	if updateQty >= 0 {
		qty := entities.Quantity(updateQty)
		update.CompletedQty = &qty
	}

	result, err := app.Execution.UpdateWorkOrderStatus(cmd.Context(), app.Tenant, args[0], update)
	if err != nil {
		return err
	}

	workOrder := result.WorkOrder
	fmt.Printf("Work order %s: %s (%d/%d)\n", workOrder.ID, workOrder.Status, workOrder.CompletedQty, workOrder.PlannedQty)
	if result.OrderCompleted {
		app.Logger.Info("order completed", "order", result.Order.ID, "produced", result.Order.ProducedQty)
		fmt.Printf("Order %s completed, produced %d\n", result.Order.ID, result.Order.ProducedQty)
	}
	return nil
}
