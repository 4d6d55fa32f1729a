package aggregate

import (
	"testing"
	"time"
)

func TestNewOrderFromCartSnapshotsLines(t *testing.T) {
	cart, _ := NewCart("user-1")
	cart.AddItem(product("1", "طعام قطط فاخر", 120, true))
	cart.AddItem(product("1", "طعام قطط فاخر", 120, true))
	cart.AddItem(product("2", "لعبة للقطط", 45.5, true))

	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	order, err := NewOrderFromCart(cart, now)
	if err != nil {
		t.Fatalf("NewOrderFromCart: %v", err)
	}

	if order.Status != OrderStatusPending {
		t.Errorf("expected pending order, got %q", order.Status)
	}
	if order.Date != "2025-03-10" {
		t.Errorf("expected order date 2025-03-10, got %q", order.Date)
	}
	if len(order.Items) != 2 {
		t.Fatalf("expected 2 snapshot lines, got %d", len(order.Items))
	}
	if order.Items[0].Name != "طعام قطط فاخر" || order.Items[0].Quantity != 2 || order.Items[0].Price != 120 {
		t.Errorf("unexpected first line: %+v", order.Items[0])
	}
	if order.Total != 285.5 {
		t.Errorf("expected total 285.5, got %v", order.Total)
	}
}

func TestNewOrderFromEmptyCart(t *testing.T) {
	cart, _ := NewCart("user-1")
	if _, err := NewOrderFromCart(cart, time.Now()); err == nil {
		t.Error("expected error for empty cart")
	}
}

func TestOrderTotalRoundsToCents(t *testing.T) {
	cart, _ := NewCart("user-1")
	cart.AddItem(product("1", "a", 0.1, true))
	cart.AddItem(product("2", "b", 0.2, true))

	order, err := NewOrderFromCart(cart, time.Now())
	if err != nil {
		t.Fatalf("NewOrderFromCart: %v", err)
	}
	if order.Total != 0.3 {
		t.Errorf("expected total rounded to 0.3, got %v", order.Total)
	}
}
