package planfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/domain/entities"
)

func TestParse(t *testing.T) {
	data := []byte(`
part_number: PART123
planned_qty: 20
plan:
  - work_center: WC-A
    stage: 1
  - work_center: WC-B
    stage: 1
  - work_center: WC-C
    stage: 2
    parallel: true
  - work_center: WC-D
    stage: 2
    parallel: true
`)

	file, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if file.PartNumber != "PART123" {
		t.Errorf("PartNumber = %q, want %q", file.PartNumber, "PART123")
	}
	if file.PlannedQty != 20 {
		t.Errorf("PlannedQty = %d, want 20", file.PlannedQty)
	}
	if len(file.Plan) != 4 {
		t.Fatalf("len(Plan) = %d, want 4", len(file.Plan))
	}
	if !file.Plan[2].Parallel || file.Plan[2].Stage != 2 {
		t.Errorf("Plan[2] = %+v, want parallel stage 2", file.Plan[2])
	}
}

func TestParse_NoPlanSection(t *testing.T) {
	file, err := Parse([]byte("part_number: PART123\nplanned_qty: 5\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(file.Plan) != 0 {
		t.Errorf("len(Plan) = %d, want 0", len(file.Plan))
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "missing part number",
			data: "planned_qty: 5\n",
		},
		{
			name: "non-positive quantity",
			data: "part_number: PART123\nplanned_qty: 0\n",
		},
		{
			name: "malformed yaml",
			data: "part_number: [unclosed\n",
		},
		{
			name: "invalid stage in plan",
			data: "part_number: PART123\nplanned_qty: 5\nplan:\n  - work_center: WC-A\n    stage: 0\n",
		},
		{
			name: "mixed parallel stage in plan",
			data: "part_number: PART123\nplanned_qty: 5\nplan:\n  - work_center: WC-A\n    stage: 1\n  - work_center: WC-B\n    stage: 1\n    parallel: true\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Error("Parse() error = nil, want error")
			}
		})
	}
}

func TestParse_InvalidPlanWrapsInvalidRequest(t *testing.T) {
	_, err := Parse([]byte("part_number: PART123\nplanned_qty: 5\nplan:\n  - work_center: \"\"\n    stage: 1\n"))
	if !errors.Is(err, entities.ErrInvalidRequest) {
		t.Errorf("Parse() error = %v, want ErrInvalidRequest", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "order.yaml")
	if err := os.WriteFile(path, []byte("part_number: PART123\nplanned_qty: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	file, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if file.PartNumber != "PART123" {
		t.Errorf("PartNumber = %q, want %q", file.PartNumber, "PART123")
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() error = nil for missing file, want error")
	}
}
