package services

import (
	"context"

	"rifq-petcare/internal/application/command"
	"rifq-petcare/internal/application/query"
	"rifq-petcare/internal/domain/aggregate"
	"rifq-petcare/internal/domain/catalog"
)

// StoreService orchestrates the pet store: product browsing, the cart, and
// checkout
type StoreService struct {
	cartHandlers    *command.CartHandlers
	checkoutHandler *command.CheckoutHandler
	storeQueries    *query.StoreQueries
	catalogQueries  *query.CatalogQueries
}

func NewStoreService(
	cartHandlers *command.CartHandlers,
	checkoutHandler *command.CheckoutHandler,
	storeQueries *query.StoreQueries,
	catalogQueries *query.CatalogQueries,
) *StoreService {
	return &StoreService{
		cartHandlers:    cartHandlers,
		checkoutHandler: checkoutHandler,
		storeQueries:    storeQueries,
		catalogQueries:  catalogQueries,
	}
}

// Command operations
func (s *StoreService) AddToCart(ctx context.Context, cmd command.AddToCart) error {
	return s.cartHandlers.HandleAddToCart(ctx, cmd)
}

func (s *StoreService) SetCartQuantity(ctx context.Context, cmd command.SetCartQuantity) error {
	return s.cartHandlers.HandleSetQuantity(ctx, cmd)
}

func (s *StoreService) Checkout(ctx context.Context, cmd command.Checkout) (*aggregate.Order, error) {
	return s.checkoutHandler.Handle(ctx, cmd)
}

// Query operations
func (s *StoreService) ListProducts(f catalog.ProductFilter) []catalog.Product {
	return s.catalogQueries.ListProducts(f)
}

func (s *StoreService) GetProduct(id string) (catalog.Product, error) {
	return s.catalogQueries.GetProduct(id)
}

func (s *StoreService) GetCart(ctx context.Context, userID string) (query.CartView, error) {
	return s.storeQueries.GetCart(ctx, userID)
}

func (s *StoreService) ListOrders(ctx context.Context, userID string) ([]aggregate.Order, error) {
	return s.storeQueries.ListOrders(ctx, userID)
}
