package entities

// PartNumber represents a unique part identifier
type PartNumber string

// Quantity represents an integer quantity value for discrete manufacturing units
type Quantity int64

// Item represents a manufactured or stocked item with its properties
type Item struct {
	PartNumber    PartNumber
	Description   string
	UnitOfMeasure string
}
