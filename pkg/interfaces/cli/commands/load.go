package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/infrastructure/repositories/csv"
)

var (
	loadItemsFile       string
	loadWorkCentersFile string
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load item and work center master data from CSV files",
	RunE:  runLoad,
}

func init() {
	loadCmd.Flags().StringVar(&loadItemsFile, "items", "", "Items CSV file (part_number, description, unit_of_measure)")
	loadCmd.Flags().StringVar(&loadWorkCentersFile, "work-centers", "", "Work centers CSV file (id, name)")
}

func runLoad(cmd *cobra.Command, args []string) error {
	if loadItemsFile == "" && loadWorkCentersFile == "" {
		return fmt.Errorf("nothing to load: give --items and/or --work-centers")
	}

	loader := csv.NewLoader()

	if loadItemsFile != "" {
		items, err := loader.LoadItems(loadItemsFile)
		if err != nil {
			return err
		}
		for _, item := range items {
			if err := app.Items.SaveItem(app.Tenant, item); err != nil {
				return fmt.Errorf("failed to save item %s: %w", item.PartNumber, err)
			}
		}
		app.Logger.Info("items loaded", "count", len(items), "file", loadItemsFile)
		fmt.Printf("Loaded %d items\n", len(items))
	}

	if loadWorkCentersFile != "" {
		workCenters, err := loader.LoadWorkCenters(app.Tenant, loadWorkCentersFile)
		if err != nil {
			return err
		}
		for _, workCenter := range workCenters {
			if err := app.WorkCenters.SaveWorkCenter(workCenter); err != nil {
				return fmt.Errorf("failed to save work center %s: %w", workCenter.ID, err)
			}
		}
		app.Logger.Info("work centers loaded", "count", len(workCenters), "file", loadWorkCentersFile)
		fmt.Printf("Loaded %d work centers\n", len(workCenters))
	}

	return nil
}
