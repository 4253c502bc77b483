package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/domain/entities"
)

// Loader handles loading master data from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadItems loads items from a CSV file
func (l *Loader) LoadItems(filename string) ([]*entities.Item, error) {
	records, err := readAll(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read items CSV: %w", err)
	}

	expectedHeader := []string{"part_number", "description", "unit_of_measure"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("items CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var items []*entities.Item
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("items CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}
		if record[0] == "" {
			return nil, fmt.Errorf("items CSV row %d: part_number cannot be empty", i+2)
		}

		items = append(items, &entities.Item{
			PartNumber:    entities.PartNumber(record[0]),
			Description:   record[1],
			UnitOfMeasure: record[2],
		})
	}

	return items, nil
}

// LoadWorkCenters loads work centers from a CSV file
func (l *Loader) LoadWorkCenters(tenantID, filename string) ([]*entities.WorkCenter, error) {
	records, err := readAll(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read work centers CSV: %w", err)
	}

	expectedHeader := []string{"id", "name"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("work centers CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var workCenters []*entities.WorkCenter
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("work centers CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		workCenter, err := entities.NewWorkCenter(record[0], tenantID, record[1])
		if err != nil {
			return nil, fmt.Errorf("work centers CSV row %d: %w", i+2, err)
		}
		workCenters = append(workCenters, workCenter)
	}

	return workCenters, nil
}

func readAll(filename string) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", filename, err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("CSV must have header and at least one data row")
	}
	return records, nil
}

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}

	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}

	return true
}
