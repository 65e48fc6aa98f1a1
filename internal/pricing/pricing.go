// Package pricing derives display prices from inventory unit costs.
// All math runs on decimals so markup multipliers like 0.035 stay exact;
// results are rounded to a "nice" denomination for the menu.
package pricing

import "github.com/shopspring/decimal"

// Markup constants, per drink class. Wines by the glass assume a 175ml pour
// from a 750ml bottle; spirits a 35ml shot.
var (
	beerMarkup      = decimal.NewFromFloat(3.5)
	wineGlassPour   = decimal.NewFromFloat(0.25)
	wineGlassMarkup = decimal.NewFromFloat(4.0)
	wineBottle      = decimal.NewFromFloat(3.5)
	spiritShotPour  = decimal.NewFromFloat(0.035)
	spiritMarkup    = decimal.NewFromFloat(5.0)
)

// RoundToNearest rounds amount to the nearest multiple of step.
// Ties round half away from zero, so a price never rounds down past the
// midpoint of a denomination.
func RoundToNearest(amount decimal.Decimal, step int64) int64 {
	s := decimal.NewFromInt(step)
	return amount.Div(s).Round(0).Mul(s).IntPart()
}

// BeerBottlePrice prices a beer or cider bottle: unit cost x 3.5,
// rounded to the nearest 100.
func BeerBottlePrice(unitCost int64) int64 {
	return RoundToNearest(decimal.NewFromInt(unitCost).Mul(beerMarkup), 100)
}

// WineGlassPrice prices a 175ml glass from a 750ml bottle at 4x markup,
// rounded to the nearest 1000.
func WineGlassPrice(unitCost int64) int64 {
	p := decimal.NewFromInt(unitCost).Mul(wineGlassPour).Mul(wineGlassMarkup)
	return RoundToNearest(p, 1000)
}

// WineBottlePrice prices a full bottle: unit cost x 3.5,
// rounded to the nearest 1000.
func WineBottlePrice(unitCost int64) int64 {
	return RoundToNearest(decimal.NewFromInt(unitCost).Mul(wineBottle), 1000)
}

// SpiritShotPrice prices a 35ml shot at 5x markup,
// rounded to the nearest 500.
func SpiritShotPrice(unitCost int64) int64 {
	p := decimal.NewFromInt(unitCost).Mul(spiritShotPour).Mul(spiritMarkup)
	return RoundToNearest(p, 500)
}
