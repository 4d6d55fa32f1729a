package query

import (
	"context"

	"rifq-petcare/internal/domain/aggregate"
	"rifq-petcare/internal/domain/repository"
	"rifq-petcare/internal/infrastructure/projection"
)

// ProfileQueries serves the profile screen: activity counters and saved
// payment methods.
type ProfileQueries struct {
	store repository.StoreGateway
	stats *projection.ProfileStatsProjection
}

// NewProfileQueries creates the profile read side
func NewProfileQueries(store repository.StoreGateway, stats *projection.ProfileStatsProjection) *ProfileQueries {
	return &ProfileQueries{
		store: store,
		stats: stats,
	}
}

// GetStats returns the user's order and appointment counters. Counters are
// rebuilt from the persisted collections on first access after a restart,
// then kept current by the event bus.
func (q *ProfileQueries) GetStats(ctx context.Context, userID string) (projection.ProfileStats, error) {
	if q.stats.Known(userID) {
		return q.stats.Get(userID), nil
	}

	var orders []aggregate.Order
	if _, err := q.store.Get(ctx, userID, repository.KeyOrders, &orders); err != nil {
		return projection.ProfileStats{}, err
	}

	var appointments []aggregate.Appointment
	if _, err := q.store.Get(ctx, userID, repository.KeyAppointments, &appointments); err != nil {
		return projection.ProfileStats{}, err
	}

	active := 0
	for _, a := range appointments {
		if a.Status != aggregate.AppointmentStatusCancelled {
			active++
		}
	}

	rebuilt := projection.ProfileStats{
		Orders:       len(orders),
		Appointments: active,
	}
	q.stats.Seed(userID, rebuilt)
	return rebuilt, nil
}

// ListPaymentMethods returns the user's saved payment methods, seeding the
// defaults on first access
func (q *ProfileQueries) ListPaymentMethods(ctx context.Context, userID string) (aggregate.PaymentMethods, error) {
	var methods aggregate.PaymentMethods
	found, err := q.store.Get(ctx, userID, repository.KeyPaymentMethods, &methods)
	if err != nil {
		return nil, err
	}
	if !found {
		methods = aggregate.SeedPaymentMethods()
		if err := q.store.Set(ctx, userID, repository.KeyPaymentMethods, methods); err != nil {
			return nil, err
		}
	}
	return methods, nil
}
