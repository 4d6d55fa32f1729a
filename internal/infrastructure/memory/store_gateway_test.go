package memory

import (
	"context"
	"reflect"
	"testing"

	"rifq-petcare/internal/domain/aggregate"
	"rifq-petcare/internal/domain/repository"
)

func TestStoreGatewayRoundTrip(t *testing.T) {
	g := NewStoreGateway()
	ctx := context.Background()

	pets := []aggregate.Pet{
		{
			ID:   "1",
			Name: "بادي",
			Type: "كلب",
			Age:  "٣ سنوات",
			Vaccinations: []aggregate.Vaccination{
				{Name: "داء الكلب", Date: "2024-01-15", NextDue: "2025-01-15"},
			},
		},
		{ID: "2", Name: "مشمش", Type: "قطة"},
	}

	if err := g.Set(ctx, "user-1", repository.KeyPets, pets); err != nil {
		t.Fatalf("Set: %v", err)
	}

	var got []aggregate.Pet
	found, err := g.Get(ctx, "user-1", repository.KeyPets, &got)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !found {
		t.Fatal("expected key to exist")
	}
	if !reflect.DeepEqual(got, pets) {
		t.Errorf("round trip changed the data:\n got %+v\nwant %+v", got, pets)
	}
}

func TestStoreGatewayMissingKey(t *testing.T) {
	g := NewStoreGateway()

	var out []aggregate.Order
	found, err := g.Get(context.Background(), "user-1", repository.KeyOrders, &out)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if found {
		t.Error("missing key should report found=false")
	}
	if out != nil {
		t.Errorf("out should be untouched for a missing key, got %+v", out)
	}
}

func TestStoreGatewayScopedPerUser(t *testing.T) {
	g := NewStoreGateway()
	ctx := context.Background()

	if err := g.Set(ctx, "user-1", repository.KeyCart, []aggregate.CartItem{{Quantity: 1}}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	var other []aggregate.CartItem
	found, err := g.Get(ctx, "user-2", repository.KeyCart, &other)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if found {
		t.Error("one user's data must not be visible to another")
	}
}

func TestStoreGatewaySetManyReplacesAllKeys(t *testing.T) {
	g := NewStoreGateway()
	ctx := context.Background()

	if err := g.Set(ctx, "user-1", repository.KeyCart, []aggregate.CartItem{{Quantity: 2}}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	orders := []aggregate.Order{{ID: "100", Total: 50, Status: aggregate.OrderStatusPending}}
	err := g.SetMany(ctx, "user-1", map[string]interface{}{
		repository.KeyOrders: orders,
		repository.KeyCart:   []aggregate.CartItem{},
	})
	if err != nil {
		t.Fatalf("SetMany: %v", err)
	}

	var gotOrders []aggregate.Order
	if _, err := g.Get(ctx, "user-1", repository.KeyOrders, &gotOrders); err != nil {
		t.Fatalf("Get orders: %v", err)
	}
	if !reflect.DeepEqual(gotOrders, orders) {
		t.Errorf("orders not written: %+v", gotOrders)
	}

	var gotCart []aggregate.CartItem
	if _, err := g.Get(ctx, "user-1", repository.KeyCart, &gotCart); err != nil {
		t.Fatalf("Get cart: %v", err)
	}
	if len(gotCart) != 0 {
		t.Errorf("cart not cleared: %+v", gotCart)
	}
}
