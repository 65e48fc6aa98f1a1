package services

import (
	"testing"

	"seedgen/internal/models"
	"seedgen/internal/sku"
)

func TestCafesserieCatalogIsFixed(t *testing.T) {
	svc := NewInventoryService()
	doc, err := svc.BuildCatalog(models.ConceptCafesserie)
	if err != nil {
		t.Fatalf("BuildCatalog: %v", err)
	}
	if len(doc.Items) != 77 {
		t.Fatalf("cafesserie catalog has %d items, want 77", len(doc.Items))
	}
	if doc.Items[0].Sku != "CAF-INV-COFF-0001" {
		t.Errorf("first item = %q", doc.Items[0].Sku)
	}

	seen := make(map[string]bool)
	for _, item := range doc.Items {
		if seen[item.Sku] {
			t.Errorf("duplicate SKU %q", item.Sku)
		}
		seen[item.Sku] = true
		if !sku.IsWellFormed(item.Sku) {
			t.Errorf("malformed SKU %q", item.Sku)
		}
	}
}

func TestTapasCatalogSkus(t *testing.T) {
	svc := NewInventoryService()
	doc, err := svc.BuildCatalog(models.ConceptTapas)
	if err != nil {
		t.Fatalf("BuildCatalog: %v", err)
	}
	if len(doc.Items) != 37 {
		t.Fatalf("tapas catalog has %d items, want 37", len(doc.Items))
	}

	seen := make(map[string]bool)
	for _, item := range doc.Items {
		if seen[item.Sku] {
			t.Errorf("duplicate SKU %q", item.Sku)
		}
		seen[item.Sku] = true
		if !sku.IsWellFormed(item.Sku) {
			t.Errorf("malformed SKU %q", item.Sku)
		}
	}

	// Counters run per category code in sheet order.
	if doc.Items[0].Sku != "INV-APER-0001" {
		t.Errorf("first item = %q, want INV-APER-0001", doc.Items[0].Sku)
	}

	var nile models.InventoryItem
	for _, item := range doc.Items {
		if item.Name == "Nile Special 1*20BTL*500MLS" {
			nile = item
		}
	}
	if nile.Sku != "INV-LBER-0006" {
		t.Errorf("Nile Special SKU = %q, want INV-LBER-0006", nile.Sku)
	}
	if nile.UnitCost == nil || *nile.UnitCost != 62500 {
		t.Errorf("Nile Special cost = %v", nile.UnitCost)
	}
	if nile.InitialStock != 20 {
		t.Errorf("available item initialStock = %d, want 20", nile.InitialStock)
	}
	if nile.ReorderLevel != 5 || nile.ReorderQty != 10 {
		t.Errorf("reorder policy = %d/%d, want 5/10", nile.ReorderLevel, nile.ReorderQty)
	}

	// Unavailable items start at zero stock.
	var campari models.InventoryItem
	for _, item := range doc.Items {
		if item.Name == "Campari Bitters 1Lt" {
			campari = item
		}
	}
	if campari.InitialStock != 0 {
		t.Errorf("unavailable item initialStock = %d, want 0", campari.InitialStock)
	}
}

func TestTapasCatalogIsDeterministic(t *testing.T) {
	svc := NewInventoryService()
	a, err := svc.BuildCatalog(models.ConceptTapas)
	if err != nil {
		t.Fatalf("BuildCatalog: %v", err)
	}
	b, err := svc.BuildCatalog(models.ConceptTapas)
	if err != nil {
		t.Fatalf("BuildCatalog: %v", err)
	}
	for i := range a.Items {
		if a.Items[i].Sku != b.Items[i].Sku {
			t.Fatalf("run differs at %d: %q vs %q", i, a.Items[i].Sku, b.Items[i].Sku)
		}
	}
}
