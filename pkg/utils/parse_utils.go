package utils

import (
	"strconv"
	"strings"
)

// ParseQtyOr parses a quantity column value as an integer.
// Malformed or empty input falls back to the given default instead of failing
// the row; this is the only failure containment the loaders perform.
func ParseQtyOr(s string, fallback int64) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

// ParseCost parses a cost column value into minor currency units.
// Returns nil when the field is blank or malformed; the caller records the
// cost as absent rather than zero. Decimal input is truncated.
func ParseCost(s string) *int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	cost := int64(f)
	return &cost
}

// Int64ToStr converts an int64 to its string representation.
func Int64ToStr(num int64) string {
	return strconv.FormatInt(num, 10)
}
