// Package planfile reads order definitions and stage plans from YAML files
// so orders can be set up from the command line in one step.
package planfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/application/services/planning"
)

// OrderFile is the on-disk shape of an order and its stage plan
type OrderFile struct {
	PartNumber string                    `yaml:"part_number"`
	PlannedQty int64                     `yaml:"planned_qty"`
	Plan       []planning.AssignmentSpec `yaml:"plan"`
}

// Load reads an order file and validates its stage plan. An order file with
// no plan section is valid; the order executes unplanned.
func Load(filename string) (*OrderFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open order file %s: %w", filename, err)
	}
	return Parse(data)
}

// Parse decodes and validates order file contents
func Parse(data []byte) (*OrderFile, error) {
	var file OrderFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse order file: %w", err)
	}

	if file.PartNumber == "" {
		return nil, fmt.Errorf("order file must specify part_number")
	}
	if file.PlannedQty <= 0 {
		return nil, fmt.Errorf("order file planned_qty must be positive, got %d", file.PlannedQty)
	}
	if len(file.Plan) > 0 {
		if err := planning.ValidatePlan(file.Plan); err != nil {
			return nil, fmt.Errorf("order file plan is invalid: %w", err)
		}
	}

	return &file, nil
}
