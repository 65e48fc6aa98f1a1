// Package sku owns SKU minting: the closed category-to-code mapping and the
// per-code counters that make generated identifiers deterministic within a run.
package sku

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// CodeUnknown is the sentinel code for categories outside the closed mapping.
const CodeUnknown = "MISC"

// categoryCodes is the closed mapping from source inventory categories to
// 3-4 letter SKU codes. Unmapped categories get CodeUnknown; CodeFor reports
// that explicitly so callers can log the miss instead of silently shipping it.
var categoryCodes = map[string]string{
	"APERITIF/ VERMOUTHS":       "APER",
	"LOCAL BEERS":               "LBER",
	"Imported Beers":            "IBER",
	"GINS & SPIRITS":            "GIN",
	"Vodka":                     "VODK",
	"TEQUILA":                   "TEQL",
	"BLENDED WHISKEY":           "BWHI",
	"SINGLE MALT WHISKEY":       "SMLT",
	"RUM":                       "RUM",
	"BRANDY/COGNAC":             "BRND",
	"CREAMS/ LIQUEURS":          "CREM",
	"CHAMPAGNE":                 "CHMP",
	"SPARKLING WINE":            "SPRK",
	"PROSECCO":                  "PRSC",
	"WINE (Red)":                "WRED",
	"WINE (Rose)":               "WROS",
	"WINE (White)":              "WWHT",
	"MINERALS":                  "MINR",
	"SODAS":                     "SODA",
	"PACKED JUICES":             "JUCE",
	"BAKING AND FLOUR":          "BAKF",
	"SPICES AND HERBS":          "SPCE",
	"SAUCES /VINEGAR/NUTS":      "SAUC",
	"SYRUPS":                    "SYRP",
	"VINEGARS":                  "VNGR",
	"OIL AND FATS":              "OILS",
	"CEREALS/ PASTAS":           "CERE",
	"SALT, SUGAR, JAM & SWEETS": "SALT",
	"TEA,COFFEE& DESSSICUTED":   "COFF",
	"MEATS/MEAT PRODUCTS":       "MEAT",
	"PORK AND PORK PRODUCTS":    "PORK",
	"CHICKEN AND ITS PRODUCTS":  "CHKN",
	"SEA FOODS":                 "FISH",
	"DAIRY AND ITS PRODUCTS":    "DARY",
	"FRUITS":                    "FRUT",
	"VEGETABLES":                "VEGT",
	"GUEST SUPPLIES":            "SUPL",
	"CLEANING SUPPLIES":         "CLEN",
	"PRINTING & STATIONERY":     "STAT",
}

// CodeFor maps a source inventory category to its SKU code.
// The second return value is false when the category is not in the closed
// mapping and the CodeUnknown sentinel was substituted.
func CodeFor(category string) (string, bool) {
	if code, ok := categoryCodes[category]; ok {
		return code, true
	}
	return CodeUnknown, false
}

// Allocator mints SKUs of the form <PREFIX>-<CODE>-<NNNN> with a
// monotonically increasing counter per code. Counters are never reused within
// a run; the allocator is plain threaded state, not a process-wide global.
type Allocator struct {
	prefix   string
	counters map[string]int
}

// NewAllocator creates an allocator for the given SKU prefix (e.g. "INV").
func NewAllocator(prefix string) *Allocator {
	return &Allocator{prefix: prefix, counters: make(map[string]int)}
}

// Seed sets the next counter value for a code if it has not advanced yet.
func (a *Allocator) Seed(code string, next int) {
	if _, ok := a.counters[code]; !ok {
		a.counters[code] = next
	}
}

// Raise bumps the next counter value for a code to at least next.
// Used to start one past the highest SKU already present in an input file,
// so re-runs against expanded data never collide with prior output.
func (a *Allocator) Raise(code string, next int) {
	if a.counters[code] < next {
		a.counters[code] = next
	}
}

// Next mints the next SKU for a code and advances its counter.
func (a *Allocator) Next(code string) string {
	n, ok := a.counters[code]
	if !ok {
		n = 1
	}
	a.counters[code] = n + 1
	return fmt.Sprintf("%s-%s-%04d", a.prefix, code, n)
}

var wellFormed = regexp.MustCompile(`^[A-Z][A-Z0-9]*(-[A-Z][A-Z0-9]*)*-[0-9]{4}$`)

// IsWellFormed reports whether s looks like a generated SKU:
// dash-separated upper-case segments ending in a four digit counter.
func IsWellFormed(s string) bool {
	return wellFormed.MatchString(s)
}

// Counter extracts the numeric suffix of a three-segment SKU such as
// TAP-BEER-0012. Returns false for any other shape; callers seeding counters
// from existing data ignore malformed SKUs rather than fail.
func Counter(s string) (int, bool) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return 0, false
	}
	n, err := strconv.Atoi(parts[2])
	if err != nil {
		return 0, false
	}
	return n, true
}
