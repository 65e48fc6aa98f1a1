package seeddata

import "testing"

func TestParseRow(t *testing.T) {
	row, ok := ParseRow("LOCAL BEERS | Nile Special 1*20BTL*500MLS | LOCAL BEERS | Crate | 1 | 62500 |  | 4 | 1")
	if !ok {
		t.Fatal("expected row to parse")
	}
	if row.Category != "LOCAL BEERS" {
		t.Errorf("category = %q", row.Category)
	}
	if row.Name != "Nile Special 1*20BTL*500MLS" {
		t.Errorf("name = %q", row.Name)
	}
	if row.Unit != "Crate" {
		t.Errorf("unit = %q", row.Unit)
	}
	if row.Quantity != 1 {
		t.Errorf("quantity = %d", row.Quantity)
	}
	if row.Cost == nil || *row.Cost != 62500 {
		t.Errorf("cost = %v", row.Cost)
	}
	if !row.Available {
		t.Error("expected available")
	}
}

func TestParseRowSkipsNonItems(t *testing.T) {
	tests := []struct {
		name string
		row  string
	}{
		{"short row", "LOCAL BEERS | Nile Special | Crate"},
		{"header row", "CATEGORY | ITEM NAME | BRAND | UNIT | 1 | 100 |  | 1 | 1"},
		{"blank name", "LOCAL BEERS |  | LOCAL BEERS | Crate | 1 | 100 |  | 1 | 1"},
		{"blank availability", "LOCAL BEERS | Bell Lagar | LOCAL BEERS | Crate | 1 | 100 |  | 1 | "},
	}
	for _, tt := range tests {
		if _, ok := ParseRow(tt.row); ok {
			t.Errorf("%s: expected row to be skipped", tt.name)
		}
	}
}

func TestParseRowDefaults(t *testing.T) {
	// Malformed numeric columns degrade instead of dropping the row.
	row, ok := ParseRow(" | Mystery Item |   Vodka   | Btl | not-a-number | n/a |  | 1 | 0")
	if !ok {
		t.Fatal("expected row to parse")
	}
	if row.Category != "Vodka" {
		t.Errorf("blank category should fall back to brand, got %q", row.Category)
	}
	if row.Quantity != 1 {
		t.Errorf("quantity = %d, want default 1", row.Quantity)
	}
	if row.Cost != nil {
		t.Errorf("cost = %v, want nil for unparseable", row.Cost)
	}
	if row.Available {
		t.Error("availability 0 should parse as unavailable")
	}
}

func TestParseRowsFullSheet(t *testing.T) {
	rows := ParseRows(TapasInventoryRaw)
	if len(rows) != 37 {
		t.Fatalf("parsed %d rows, want 37", len(rows))
	}
	if rows[0].Name != "Aperol 700Ml" {
		t.Errorf("first row = %q", rows[0].Name)
	}
	if rows[len(rows)-1].Name != "Absolut Vodka Raspberry 1Lt" {
		t.Errorf("last row = %q", rows[len(rows)-1].Name)
	}
}
