package command

import (
	"context"
	"testing"

	"rifq-petcare/internal/domain/aggregate"
	"rifq-petcare/internal/domain/repository"
)

func TestPaymentMethodsSeededOnFirstAccess(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	h := NewPaymentMethodHandlers(env.store, env.eventBus)

	methods, err := h.HandleAdd(ctx, AddPaymentMethod{
		UserID: "user-1", Kind: aggregate.PaymentKindApplePay,
	})
	if err != nil {
		t.Fatalf("HandleAdd: %v", err)
	}

	// Seeded Visa + PayPal plus the new entry
	if len(methods) != 3 {
		t.Fatalf("expected 3 methods, got %d", len(methods))
	}
	def, ok := methods.Default()
	if !ok || def.Brand != "Visa" {
		t.Errorf("seeded Visa should stay default: %+v", def)
	}

	var persisted aggregate.PaymentMethods
	if _, err := env.store.Get(ctx, "user-1", repository.KeyPaymentMethods, &persisted); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(persisted) != 3 {
		t.Errorf("methods not persisted: %+v", persisted)
	}
}

func TestSetDefaultPersistsExclusively(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	h := NewPaymentMethodHandlers(env.store, env.eventBus)

	methods, err := h.HandleSetDefault(ctx, SetDefaultPaymentMethod{
		UserID: "user-1", PaymentMethodID: "2",
	})
	if err != nil {
		t.Fatalf("HandleSetDefault: %v", err)
	}

	defaults := 0
	for _, m := range methods {
		if m.IsDefault {
			defaults++
		}
	}
	if defaults != 1 {
		t.Errorf("expected exactly one default, got %d", defaults)
	}

	var persisted aggregate.PaymentMethods
	if _, err := env.store.Get(ctx, "user-1", repository.KeyPaymentMethods, &persisted); err != nil {
		t.Fatalf("Get: %v", err)
	}
	def, ok := persisted.Default()
	if !ok || def.ID != "2" {
		t.Errorf("persisted default wrong: %+v", def)
	}
}

func TestSetDefaultUnknownMethod(t *testing.T) {
	env := newTestEnv(t)
	h := NewPaymentMethodHandlers(env.store, env.eventBus)

	_, err := h.HandleSetDefault(context.Background(), SetDefaultPaymentMethod{
		UserID: "user-1", PaymentMethodID: "missing",
	})
	if err == nil {
		t.Error("expected error for unknown payment method id")
	}
}
