package sku

import "testing"

func TestCodeFor(t *testing.T) {
	tests := []struct {
		category string
		want     string
		known    bool
	}{
		{"LOCAL BEERS", "LBER", true},
		{"Imported Beers", "IBER", true},
		{"GINS & SPIRITS", "GIN", true},
		{"Vodka", "VODK", true},
		{"WINE (Red)", "WRED", true},
		{"SALT, SUGAR, JAM & SWEETS", "SALT", true},
		{"TEA,COFFEE& DESSSICUTED", "COFF", true},
		{"Something Else Entirely", "MISC", false},
		{"", "MISC", false},
	}
	for _, tt := range tests {
		got, known := CodeFor(tt.category)
		if got != tt.want || known != tt.known {
			t.Errorf("CodeFor(%q) = (%q, %v), want (%q, %v)", tt.category, got, known, tt.want, tt.known)
		}
	}
}

func TestAllocatorNext(t *testing.T) {
	alloc := NewAllocator("INV")
	if got := alloc.Next("LBER"); got != "INV-LBER-0001" {
		t.Fatalf("first SKU = %q, want INV-LBER-0001", got)
	}
	if got := alloc.Next("LBER"); got != "INV-LBER-0002" {
		t.Fatalf("second SKU = %q, want INV-LBER-0002", got)
	}
	// Counters are independent per code.
	if got := alloc.Next("VODK"); got != "INV-VODK-0001" {
		t.Fatalf("other code SKU = %q, want INV-VODK-0001", got)
	}
}

func TestAllocatorSeedAndRaise(t *testing.T) {
	alloc := NewAllocator("TAP")
	alloc.Seed("BEER", 4)
	if got := alloc.Next("BEER"); got != "TAP-BEER-0004" {
		t.Fatalf("seeded SKU = %q, want TAP-BEER-0004", got)
	}

	// Seed never rewinds an advanced counter.
	alloc.Seed("BEER", 2)
	if got := alloc.Next("BEER"); got != "TAP-BEER-0005" {
		t.Fatalf("SKU after late Seed = %q, want TAP-BEER-0005", got)
	}

	// Raise only moves forward.
	alloc.Raise("BEER", 3)
	if got := alloc.Next("BEER"); got != "TAP-BEER-0006" {
		t.Fatalf("SKU after low Raise = %q, want TAP-BEER-0006", got)
	}
	alloc.Raise("BEER", 12)
	if got := alloc.Next("BEER"); got != "TAP-BEER-0012" {
		t.Fatalf("SKU after Raise = %q, want TAP-BEER-0012", got)
	}
}

func TestIsWellFormed(t *testing.T) {
	tests := []struct {
		sku  string
		want bool
	}{
		{"INV-LBER-0001", true},
		{"TAP-BEER-0003", true},
		{"CAF-INV-COFF-0001", true},
		{"INV-MISC-0001", true},
		{"inv-lber-0001", false},
		{"INV-LBER-01", false},
		{"INV-LBER-00010", false},
		{"0001", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsWellFormed(tt.sku); got != tt.want {
			t.Errorf("IsWellFormed(%q) = %v, want %v", tt.sku, got, tt.want)
		}
	}
}

func TestCounter(t *testing.T) {
	if n, ok := Counter("TAP-BEER-0012"); !ok || n != 12 {
		t.Fatalf("Counter(TAP-BEER-0012) = (%d, %v), want (12, true)", n, ok)
	}
	if _, ok := Counter("CAF-INV-COFF-0001"); ok {
		t.Fatal("Counter should reject four-segment SKUs")
	}
	if _, ok := Counter("TAP-BEER-abcd"); ok {
		t.Fatal("Counter should reject non-numeric suffixes")
	}
}
