package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/application/dto"
	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/domain/entities"
)

func sampleProgress() *dto.OrderProgress {
	return &dto.OrderProgress{
		Order: &entities.ManufacturingOrder{
			ID:         "MO-1",
			TenantID:   "tenant-a",
			PartNumber: "PART123",
			PlannedQty: 20,
			Status:     entities.OrderInProgress,
		},
		Stages: []dto.StageProgress{
			{
				Stage:     1,
				Satisfied: true,
				Assignments: []dto.AssignmentProgress{
					{
						Assignment: &entities.WorkCenterAssignment{ID: "AS-1", OrderID: "MO-1", WorkCenterID: "WC-A", Stage: 1},
						WorkOrder:  &entities.WorkOrder{ID: "WO-1", Status: entities.WorkOrderCompleted, CompletedQty: 20},
					},
				},
			},
			{
				Stage:    2,
				Parallel: true,
				Assignments: []dto.AssignmentProgress{
					{
						Assignment: &entities.WorkCenterAssignment{ID: "AS-2", OrderID: "MO-1", WorkCenterID: "WC-C", Stage: 2, Parallel: true},
						Eligible:   true,
					},
				},
			},
		},
	}
}

func TestGenerate_Text(t *testing.T) {
	var buf strings.Builder
	if err := Generate(&buf, sampleProgress(), Config{Format: "text"}); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Order MO-1 (PART123)", "Status: in_progress", "WC-A", "completed", "WC-C", "parallel"} {
		if !strings.Contains(out, want) {
			t.Errorf("text report missing %q:\n%s", want, out)
		}
	}
}

func TestGenerate_JSON(t *testing.T) {
	var buf strings.Builder
	if err := Generate(&buf, sampleProgress(), Config{Format: "json"}); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	var decoded dto.OrderProgress
	if err := json.Unmarshal([]byte(buf.String()), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Order.ID != "MO-1" {
		t.Errorf("decoded order ID = %q, want %q", decoded.Order.ID, "MO-1")
	}
	if len(decoded.Stages) != 2 {
		t.Errorf("decoded stages = %d, want 2", len(decoded.Stages))
	}
}

func TestGenerate_UnsupportedFormat(t *testing.T) {
	var buf strings.Builder
	if err := Generate(&buf, sampleProgress(), Config{Format: "xml"}); err == nil {
		t.Error("Generate() error = nil, want error for unsupported format")
	}
}
