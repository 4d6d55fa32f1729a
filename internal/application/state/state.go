// Package state holds the per-user session objects the workflows operate on:
// the live cart and the in-progress booking form. It replaces UI-framework
// state with an explicit application object the handlers share.
package state

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"rifq-petcare/internal/domain/aggregate"
	"rifq-petcare/internal/domain/repository"
	"rifq-petcare/pkg/logger"
)

// AppState is the session-scoped mutable state for all signed-in users.
// Carts are lazily restored from the store gateway; booking workflows exist
// only while a booking dialog is open.
//
// The mutex guards the maps, not the aggregates inside them. Each user drives
// one workflow operation at a time (single active screen or modal), so the
// cart and booking objects handed out here have a single writer per user and
// are not safe for concurrent mutation from parallel requests for the same
// user.
type AppState struct {
	store repository.StoreGateway

	mu       sync.Mutex
	carts    map[string]*aggregate.Cart
	bookings map[string]*aggregate.BookingWorkflow
}

// New creates the application state backed by the given store
func New(store repository.StoreGateway) *AppState {
	return &AppState{
		store:    store,
		carts:    make(map[string]*aggregate.Cart),
		bookings: make(map[string]*aggregate.BookingWorkflow),
	}
}

// Cart returns the user's live cart, restoring it from the store on first
// access.
func (s *AppState) Cart(ctx context.Context, userID string) (*aggregate.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cart, ok := s.carts[userID]; ok {
		return cart, nil
	}

	var items []aggregate.CartItem
	if _, err := s.store.Get(ctx, userID, repository.KeyCart, &items); err != nil {
		return nil, err
	}

	cart, err := aggregate.NewCartFromItems(userID, items)
	if err != nil {
		return nil, err
	}
	if dropped := len(items) - len(cart.Items()); dropped > 0 {
		logger.L().Warn("dropped corrupt cart lines on restore",
			zap.String("user_id", userID),
			zap.Int("dropped", dropped),
		)
	}
	s.carts[userID] = cart
	return cart, nil
}

// Booking returns the user's in-progress booking workflow, if any
func (s *AppState) Booking(userID string) (*aggregate.BookingWorkflow, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.bookings[userID]
	return w, ok
}

// StartBooking installs a fresh booking workflow, replacing any abandoned one
func (s *AppState) StartBooking(userID string, w *aggregate.BookingWorkflow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings[userID] = w
}

// EndBooking discards the user's booking workflow, e.g. after submit or when
// the dialog is dismissed. Unsubmitted field state is dropped, never persisted.
func (s *AppState) EndBooking(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.bookings, userID)
}
