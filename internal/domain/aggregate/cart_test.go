package aggregate

import (
	"testing"

	"rifq-petcare/internal/domain/catalog"
)

func product(id, name string, price float64, inStock bool) catalog.Product {
	return catalog.Product{
		ID:      id,
		Name:    name,
		Price:   price,
		InStock: inStock,
	}
}

func TestCartAddItemIncrementsQuantity(t *testing.T) {
	cart, err := NewCart("user-1")
	if err != nil {
		t.Fatalf("NewCart: %v", err)
	}

	p := product("1", "طعام كلاب", 120, true)
	if err := cart.AddItem(p); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := cart.AddItem(p); err != nil {
		t.Fatalf("AddItem again: %v", err)
	}

	items := cart.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(items))
	}
	if items[0].Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", items[0].Quantity)
	}
	if got := cart.TotalItemCount(); got != 2 {
		t.Errorf("expected total item count 2, got %d", got)
	}
	if got := cart.TotalPrice(); got != 240 {
		t.Errorf("expected total price 240, got %v", got)
	}
}

func TestCartAddOutOfStockDoesNotMutate(t *testing.T) {
	cart, _ := NewCart("user-1")

	if err := cart.AddItem(product("1", "طعام كلاب", 120, true)); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	err := cart.AddItem(product("7", "قفص سفر", 220, false))
	if err == nil {
		t.Fatal("expected error adding out-of-stock product")
	}

	if got := cart.TotalItemCount(); got != 1 {
		t.Errorf("cart mutated by rejected add: count %d", got)
	}
	if got := cart.TotalPrice(); got != 120 {
		t.Errorf("cart mutated by rejected add: total %v", got)
	}
}

func TestCartTotalsAreOrderIndependent(t *testing.T) {
	a := product("1", "a", 10.5, true)
	b := product("2", "b", 3.25, true)
	c := product("3", "c", 99, true)

	cart1, _ := NewCart("u")
	cart2, _ := NewCart("u")

	for _, p := range []catalog.Product{a, b, c, a} {
		if err := cart1.AddItem(p); err != nil {
			t.Fatalf("AddItem: %v", err)
		}
	}
	for _, p := range []catalog.Product{c, a, a, b} {
		if err := cart2.AddItem(p); err != nil {
			t.Fatalf("AddItem: %v", err)
		}
	}

	if cart1.TotalPrice() != cart2.TotalPrice() {
		t.Errorf("totals differ: %v vs %v", cart1.TotalPrice(), cart2.TotalPrice())
	}
	if cart1.TotalItemCount() != cart2.TotalItemCount() {
		t.Errorf("counts differ: %d vs %d", cart1.TotalItemCount(), cart2.TotalItemCount())
	}
}

func TestCartSetQuantity(t *testing.T) {
	cart, _ := NewCart("user-1")
	p := product("1", "طعام كلاب", 120, true)
	if err := cart.AddItem(p); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	if err := cart.SetQuantity("1", 5); err != nil {
		t.Fatalf("SetQuantity: %v", err)
	}
	if got := cart.Items()[0].Quantity; got != 5 {
		t.Errorf("expected quantity 5, got %d", got)
	}

	// Zero removes the entry
	if err := cart.SetQuantity("1", 0); err != nil {
		t.Fatalf("SetQuantity zero: %v", err)
	}
	if !cart.IsEmpty() {
		t.Error("expected empty cart after removing last entry")
	}

	// Unknown product id is a no-op
	if err := cart.SetQuantity("missing", 3); err != nil {
		t.Fatalf("SetQuantity unknown id: %v", err)
	}
	if !cart.IsEmpty() {
		t.Error("unknown product id mutated the cart")
	}

	// Negative quantity is rejected
	if err := cart.SetQuantity("1", -1); err == nil {
		t.Error("expected error for negative quantity")
	}
}

func TestCartRemoveThenReAddStartsAtOne(t *testing.T) {
	cart, _ := NewCart("user-1")
	p := product("1", "طعام كلاب", 120, true)

	cart.AddItem(p)
	cart.AddItem(p)
	cart.AddItem(p)
	if err := cart.SetQuantity("1", 0); err != nil {
		t.Fatalf("SetQuantity: %v", err)
	}

	if err := cart.AddItem(p); err != nil {
		t.Fatalf("AddItem after removal: %v", err)
	}
	if got := cart.Items()[0].Quantity; got != 1 {
		t.Errorf("expected re-added product at quantity 1, got %d", got)
	}
}

// A corrupt persisted line must not wedge the cart: bad quantities are
// dropped on restore and the surviving lines stay usable.
func TestNewCartFromItemsDropsInvalidQuantity(t *testing.T) {
	items := []CartItem{
		{Product: product("1", "x", 10, true), Quantity: 0},
		{Product: product("2", "y", 25, true), Quantity: 2},
		{Product: product("3", "z", 5, true), Quantity: -1},
	}

	cart, err := NewCartFromItems("user-1", items)
	if err != nil {
		t.Fatalf("NewCartFromItems: %v", err)
	}
	if got := cart.Items(); len(got) != 1 || got[0].Product.ID != "2" {
		t.Fatalf("expected only the valid line to survive, got %+v", got)
	}
	if cart.TotalItemCount() != 2 || cart.TotalPrice() != 50 {
		t.Errorf("totals off after restore: count=%d price=%v", cart.TotalItemCount(), cart.TotalPrice())
	}
}
