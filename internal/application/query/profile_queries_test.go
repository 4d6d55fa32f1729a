package query

import (
	"context"
	"testing"
	"time"

	"rifq-petcare/internal/domain/aggregate"
	"rifq-petcare/internal/domain/event"
	"rifq-petcare/internal/domain/repository"
	"rifq-petcare/internal/infrastructure/memory"
	"rifq-petcare/internal/infrastructure/projection"
)

func orderPlaced(userID string) *event.OrderPlaced {
	return &event.OrderPlaced{OrderID: "99", UserID: userID, Timestamp: time.Now()}
}

func TestGetStatsRebuildsFromStore(t *testing.T) {
	store := memory.NewStoreGateway()
	ctx := context.Background()

	orders := []aggregate.Order{{ID: "1"}, {ID: "2"}}
	appointments := []aggregate.Appointment{
		{ID: "10", Status: aggregate.AppointmentStatusConfirmed},
		{ID: "11", Status: aggregate.AppointmentStatusCancelled},
		{ID: "12", Status: aggregate.AppointmentStatusConfirmed},
	}
	if err := store.Set(ctx, "user-1", repository.KeyOrders, orders); err != nil {
		t.Fatalf("Set orders: %v", err)
	}
	if err := store.Set(ctx, "user-1", repository.KeyAppointments, appointments); err != nil {
		t.Fatalf("Set appointments: %v", err)
	}

	stats := projection.NewProfileStatsProjection()
	q := NewProfileQueries(store, stats)

	got, err := q.GetStats(ctx, "user-1")
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if got.Orders != 2 {
		t.Errorf("expected 2 orders, got %d", got.Orders)
	}
	// Cancelled appointments do not count
	if got.Appointments != 2 {
		t.Errorf("expected 2 active appointments, got %d", got.Appointments)
	}

	// Once rebuilt, live events keep the counters current
	if err := stats.HandleOrderPlaced(ctx, orderPlaced("user-1")); err != nil {
		t.Fatalf("HandleOrderPlaced: %v", err)
	}
	got, err = q.GetStats(ctx, "user-1")
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if got.Orders != 3 {
		t.Errorf("expected 3 orders after live event, got %d", got.Orders)
	}
}

func TestGetStatsEmptyUser(t *testing.T) {
	q := NewProfileQueries(memory.NewStoreGateway(), projection.NewProfileStatsProjection())

	got, err := q.GetStats(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if got.Orders != 0 || got.Appointments != 0 {
		t.Errorf("expected zero counters, got %+v", got)
	}
}

func TestListPaymentMethodsSeedsDefaults(t *testing.T) {
	store := memory.NewStoreGateway()
	q := NewProfileQueries(store, projection.NewProfileStatsProjection())
	ctx := context.Background()

	methods, err := q.ListPaymentMethods(ctx, "user-1")
	if err != nil {
		t.Fatalf("ListPaymentMethods: %v", err)
	}
	if len(methods) != 2 {
		t.Fatalf("expected seeded defaults, got %+v", methods)
	}

	// Seeding is persisted, not recomputed
	var persisted aggregate.PaymentMethods
	found, err := store.Get(ctx, "user-1", repository.KeyPaymentMethods, &persisted)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !found {
		t.Error("seeded methods should be written to the store")
	}
}
