package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestBeerBottlePrice(t *testing.T) {
	tests := []struct {
		cost int64
		want int64
	}{
		{18000, 63000},  // 63000 exactly
		{62500, 218800}, // 218750 rounds up to the nearest 100
		{48000, 168000},
		{0, 0},
	}
	for _, tt := range tests {
		if got := BeerBottlePrice(tt.cost); got != tt.want {
			t.Errorf("BeerBottlePrice(%d) = %d, want %d", tt.cost, got, tt.want)
		}
	}
}

func TestWineGlassPrice(t *testing.T) {
	tests := []struct {
		cost int64
		want int64
	}{
		{40000, 40000},  // 40000 exactly
		{115000, 115000},
		{60000, 60000},
		{33000, 33000},
	}
	for _, tt := range tests {
		if got := WineGlassPrice(tt.cost); got != tt.want {
			t.Errorf("WineGlassPrice(%d) = %d, want %d", tt.cost, got, tt.want)
		}
	}
}

func TestWineBottlePrice(t *testing.T) {
	tests := []struct {
		cost int64
		want int64
	}{
		{40000, 140000},
		{33000, 116000}, // 115500 rounds up
		{60000, 210000},
	}
	for _, tt := range tests {
		if got := WineBottlePrice(tt.cost); got != tt.want {
			t.Errorf("WineBottlePrice(%d) = %d, want %d", tt.cost, got, tt.want)
		}
	}
}

func TestSpiritShotPrice(t *testing.T) {
	tests := []struct {
		cost int64
		want int64
	}{
		{29200, 5000},  // 5110 rounds down to the nearest 500
		{80000, 14000}, // 14000 exactly
		{185000, 32500}, // 32375 rounds up
		{24000, 4000},  // 4200 rounds down
	}
	for _, tt := range tests {
		if got := SpiritShotPrice(tt.cost); got != tt.want {
			t.Errorf("SpiritShotPrice(%d) = %d, want %d", tt.cost, got, tt.want)
		}
	}
}

func TestRoundToNearest(t *testing.T) {
	tests := []struct {
		amount float64
		step   int64
		want   int64
	}{
		{1249, 500, 1000},
		{1250, 500, 1500}, // tie rounds half away from zero
		{1750, 500, 2000},
		{99, 100, 100},
		{49, 100, 0},
	}
	for _, tt := range tests {
		if got := RoundToNearest(decimal.NewFromFloat(tt.amount), tt.step); got != tt.want {
			t.Errorf("RoundToNearest(%v, %d) = %d, want %d", tt.amount, tt.step, got, tt.want)
		}
	}
}
