package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/domain/entities"
	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/interfaces/cli/output"
)

var reportFormat string

var reportCmd = &cobra.Command{
	Use:   "report <order-id>",
	Short: "Show the stage-by-stage progress of an order",
	Args:  cobra.ExactArgs(1),
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportFormat, "format", "", "Report format: text or json (default from config)")
}

func runReport(cmd *cobra.Command, args []string) error {
	progress, err := app.Execution.Progress(cmd.Context(), app.Tenant, args[0])
	if err != nil {
		return err
	}

	format := reportFormat
	if format == "" {
		format = app.Config.Output.Format
	}
	return output.Generate(os.Stdout, progress, output.Config{Format: format})
}

var stockCmd = &cobra.Command{
	Use:   "stock <part-number>",
	Short: "Show the stock ledger and on-hand quantity of a part",
	Args:  cobra.ExactArgs(1),
	RunE:  runStock,
}

func runStock(cmd *cobra.Command, args []string) error {
	partNumber := entities.PartNumber(args[0])
	entries, err := app.Stock.ListEntries(app.Tenant, partNumber)
	if err != nil {
		return err
	}
	onHand, err := app.Stock.OnHand(app.Tenant, partNumber)
	if err != nil {
		return err
	}

	fmt.Printf("%-10s %-12s %-26s %s\n", "Movement", "Quantity", "Posted", "Reference")
	for _, entry := range entries {
		fmt.Printf("%-10s %-12s %-26s %s\n", entry.Movement, entry.Quantity, entry.PostedAt.Format("2006-01-02 15:04:05"), entry.Reference)
	}
	fmt.Printf("\nOn hand: %s\n", onHand)
	return nil
}
