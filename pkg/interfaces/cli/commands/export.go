package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/domain/entities"
	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/infrastructure/export"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export <orders|workorders>",
	Short: "Export orders or work orders as CSV",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file (default: stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	var w io.Writer = os.Stdout
	if exportOut != "" {
		file, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()
		w = file
	}

	exporter := export.NewExporter()
	switch args[0] {
	case "orders":
		orders, err := app.Orders.ListOrders(app.Tenant)
		if err != nil {
			return err
		}
		return exporter.WriteOrders(w, orders)
	case "workorders":
		orders, err := app.Orders.ListOrders(app.Tenant)
		if err != nil {
			return err
		}
		var workOrders []*entities.WorkOrder
		for _, order := range orders {
			list, err := app.WorkOrders.ListWorkOrders(app.Tenant, order.ID)
			if err != nil {
				return err
			}
			workOrders = append(workOrders, list...)
		}
		return exporter.WriteWorkOrders(w, workOrders)
	default:
		return fmt.Errorf("unknown export target %q (expected orders or workorders)", args[0])
	}
}
