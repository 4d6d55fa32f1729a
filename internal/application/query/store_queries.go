package query

import (
	"context"

	"rifq-petcare/internal/application/state"
	"rifq-petcare/internal/domain/aggregate"
	"rifq-petcare/internal/domain/repository"
)

// CartView is the cart read model returned to clients
type CartView struct {
	Items      []aggregate.CartItem `json:"items"`
	TotalPrice float64              `json:"totalPrice"`
	TotalItems int                  `json:"totalItems"`
}

// StoreQueries serves the shopping read side: the live cart and past orders
type StoreQueries struct {
	appState *state.AppState
	store    repository.StoreGateway
}

// NewStoreQueries creates the shopping read side
func NewStoreQueries(appState *state.AppState, store repository.StoreGateway) *StoreQueries {
	return &StoreQueries{
		appState: appState,
		store:    store,
	}
}

// GetCart returns the user's cart with derived totals
func (q *StoreQueries) GetCart(ctx context.Context, userID string) (CartView, error) {
	cart, err := q.appState.Cart(ctx, userID)
	if err != nil {
		return CartView{}, err
	}
	return CartView{
		Items:      cart.Items(),
		TotalPrice: cart.TotalPrice(),
		TotalItems: cart.TotalItemCount(),
	}, nil
}

// ListOrders returns the user's order history, newest first as stored
func (q *StoreQueries) ListOrders(ctx context.Context, userID string) ([]aggregate.Order, error) {
	var orders []aggregate.Order
	if _, err := q.store.Get(ctx, userID, repository.KeyOrders, &orders); err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []aggregate.Order{}
	}
	return orders, nil
}
