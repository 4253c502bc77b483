package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/application/dto"
)

// Config holds configuration for report generation
type Config struct {
	Format string
}

// Generate renders an order progress report in the configured format
func Generate(w io.Writer, progress *dto.OrderProgress, config Config) error {
	switch config.Format {
	case "text":
		return generateTextReport(w, progress)
	case "json":
		return generateJSONReport(w, progress)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// generateTextReport creates a human-readable progress report
func generateTextReport(w io.Writer, progress *dto.OrderProgress) error {
	order := progress.Order
	fmt.Fprintf(w, "Order %s (%s)\n", order.ID, order.PartNumber)
	fmt.Fprintf(w, "Status: %s  Planned: %d  Produced: %d\n\n", order.Status, order.PlannedQty, order.ProducedQty)

	if len(progress.Stages) > 0 {
		fmt.Fprintf(w, "%-6s %-10s %-12s %-12s %-6s %-9s %-9s\n",
			"Stage", "Mode", "Work Center", "Status", "Qty", "Eligible", "Satisfied")
		fmt.Fprintf(w, "%-6s %-10s %-12s %-12s %-6s %-9s %-9s\n",
			"------", "----------", "------------", "------------", "------", "---------", "---------")

		for _, stage := range progress.Stages {
			mode := "sequential"
			if stage.Parallel {
				mode = "parallel"
			}
			for _, ap := range stage.Assignments {
				status := "-"
				qty := "-"
				if ap.WorkOrder != nil {
					status = string(ap.WorkOrder.Status)
					qty = fmt.Sprintf("%d", ap.WorkOrder.CompletedQty)
				}
				fmt.Fprintf(w, "%-6d %-10s %-12s %-12s %-6s %-9s %-9s\n",
					stage.Stage,
					mode,
					ap.Assignment.WorkCenterID,
					status,
					qty,
					yesNo(ap.Eligible),
					yesNo(stage.Satisfied))
			}
		}
		fmt.Fprintln(w)
	}

	if len(progress.Unplanned) > 0 {
		fmt.Fprintf(w, "Unplanned work orders:\n")
		for _, workOrder := range progress.Unplanned {
			fmt.Fprintf(w, "  %s  %-12s %d/%d\n", workOrder.ID, workOrder.Status, workOrder.CompletedQty, workOrder.PlannedQty)
		}
	}

	return nil
}

// generateJSONReport creates machine-readable JSON output
func generateJSONReport(w io.Writer, progress *dto.OrderProgress) error {
	data, err := json.MarshalIndent(progress, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := fmt.Fprintln(w, string(data)); err != nil {
		return fmt.Errorf("failed to write JSON report: %w", err)
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
