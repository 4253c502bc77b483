// Package export writes orders and work orders as CSV for downstream
// analysis tools. Columns mirror the loader headers in the csv package.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/domain/entities"
)

// Exporter writes CSV reports
type Exporter struct{}

// NewExporter creates a new CSV exporter
func NewExporter() *Exporter {
	return &Exporter{}
}

// WriteOrders writes manufacturing orders as CSV
func (e *Exporter) WriteOrders(w io.Writer, orders []*entities.ManufacturingOrder) error {
	writer := csv.NewWriter(w)

	header := []string{"id", "part_number", "status", "planned_qty", "produced_qty", "actual_start", "actual_end"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write orders header: %w", err)
	}

	for _, order := range orders {
		record := []string{
			order.ID,
			string(order.PartNumber),
			string(order.Status),
			strconv.FormatInt(int64(order.PlannedQty), 10),
			strconv.FormatInt(int64(order.ProducedQty), 10),
			formatTime(order.ActualStart),
			formatTime(order.ActualEnd),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write order %s: %w", order.ID, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteWorkOrders writes work orders as CSV
func (e *Exporter) WriteWorkOrders(w io.Writer, workOrders []*entities.WorkOrder) error {
	writer := csv.NewWriter(w)

	header := []string{"id", "order_id", "assignment_id", "status", "planned_qty", "completed_qty", "actual_start", "actual_end"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write work orders header: %w", err)
	}

	for _, workOrder := range workOrders {
		record := []string{
			workOrder.ID,
			workOrder.OrderID,
			workOrder.AssignmentID,
			string(workOrder.Status),
			strconv.FormatInt(int64(workOrder.PlannedQty), 10),
			strconv.FormatInt(int64(workOrder.CompletedQty), 10),
			formatTime(workOrder.ActualStart),
			formatTime(workOrder.ActualEnd),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write work order %s: %w", workOrder.ID, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
