// Package seeddata holds the raw source datasets the generator runs from:
// the hand-curated Cafesserie catalog and the Tapas stock-sheet export,
// plus the fixed-format row parser for the latter.
package seeddata

import (
	"strings"

	"seedgen/pkg/utils"
)

// RawRow is one parsed stock-sheet row before SKU assignment.
type RawRow struct {
	Category  string
	Name      string
	Unit      string
	Quantity  int64
	Cost      *int64 // nil when the cost column was blank or malformed
	Available bool
}

const columnSeparator = " | "

// ParseRow parses a single " | "-separated stock-sheet row.
// Returns false for rows that carry no item: short rows, header rows,
// rows with a blank name, and rows with a blank availability column.
// Numeric columns degrade to defaults instead of failing the row.
func ParseRow(row string) (RawRow, bool) {
	parts := strings.Split(row, columnSeparator)
	if len(parts) < 9 {
		return RawRow{}, false
	}

	category := strings.TrimSpace(parts[0])
	name := strings.TrimSpace(parts[1])
	brand := strings.TrimSpace(parts[2])
	unit := strings.TrimSpace(parts[3])
	quantityStr := strings.TrimSpace(parts[4])
	costStr := strings.TrimSpace(parts[5])
	availableStr := strings.TrimSpace(parts[8])

	if name == "" || name == "ITEM NAME" || availableStr == "" {
		return RawRow{}, false
	}

	// Some rows leave the category column blank and carry it in the brand
	// column instead.
	if category == "" {
		category = brand
	}

	return RawRow{
		Category:  category,
		Name:      name,
		Unit:      unit,
		Quantity:  utils.ParseQtyOr(quantityStr, 1),
		Cost:      utils.ParseCost(costStr),
		Available: availableStr != "0",
	}, true
}

// ParseRows splits a full stock-sheet export into parsed rows,
// dropping blank lines and non-item rows.
func ParseRows(raw string) []RawRow {
	var rows []RawRow
	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if row, ok := ParseRow(line); ok {
			rows = append(rows, row)
		}
	}
	return rows
}
