package catalog

import "testing"

func TestSeededData(t *testing.T) {
	c := New()

	if got := len(c.Clinics()); got != 3 {
		t.Errorf("expected 3 clinics, got %d", got)
	}
	if got := len(c.Services()); got != 6 {
		t.Errorf("expected 6 services, got %d", got)
	}
	if got := len(c.Products()); got != 12 {
		t.Errorf("expected 12 products, got %d", got)
	}

	p, ok := c.ProductByID("7")
	if !ok {
		t.Fatal("product 7 missing")
	}
	if p.InStock {
		t.Error("product 7 should be out of stock")
	}
}

func TestSearchClinics(t *testing.T) {
	c := New()

	got := c.SearchClinics("مستشفى")
	if len(got) != 1 || got[0].ID != "3" {
		t.Errorf("expected only clinic 3, got %+v", got)
	}

	// Address matches too
	got = c.SearchClinics("العليا")
	if len(got) != 1 || got[0].ID != "2" {
		t.Errorf("expected only clinic 2, got %+v", got)
	}

	if got := c.SearchClinics(""); len(got) != 3 {
		t.Errorf("empty query should return everything, got %d", len(got))
	}
}

func TestFilterProducts(t *testing.T) {
	c := New()

	// "both" products match either pet type filter
	dogs := c.FilterProducts(ProductFilter{PetType: PetTypeDog})
	for _, p := range dogs {
		if p.PetType != PetTypeDog && p.PetType != PetTypeBoth {
			t.Errorf("dog filter returned %s product %s", p.PetType, p.ID)
		}
	}
	foundBoth := false
	for _, p := range dogs {
		if p.PetType == PetTypeBoth {
			foundBoth = true
		}
	}
	if !foundBoth {
		t.Error("dog filter should include products tagged for both")
	}

	food := c.FilterProducts(ProductFilter{Category: CategoryFood, PetType: PetTypeCat})
	for _, p := range food {
		if p.Category != CategoryFood {
			t.Errorf("food filter returned %s product %s", p.Category, p.ID)
		}
	}
	if len(food) == 0 {
		t.Error("expected cat food products")
	}

	byName := c.FilterProducts(ProductFilter{Query: "مونيلو"})
	if len(byName) != 2 {
		t.Errorf("expected 2 products matching name query, got %d", len(byName))
	}

	if got := c.FilterProducts(ProductFilter{}); len(got) != 12 {
		t.Errorf("empty filter should return everything, got %d", len(got))
	}
}
