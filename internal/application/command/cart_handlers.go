package command

import (
	"context"

	"go.uber.org/zap"

	"rifq-petcare/internal/application/state"
	"rifq-petcare/internal/domain/aggregate"
	"rifq-petcare/internal/domain/catalog"
	"rifq-petcare/internal/domain/repository"
	"rifq-petcare/internal/infrastructure/bus"
	"rifq-petcare/pkg/logger"

	pkgerrors "rifq-petcare/pkg/errors"
)

// CartHandlers mutates the user's cart. Every mutation updates the in-memory
// cart first and then persists the whole collection; a failed durable write
// is retried once and otherwise reported as a PERSISTENCE_ERROR so callers
// can surface a non-blocking warning. The in-memory change is kept.
type CartHandlers struct {
	appState *state.AppState
	store    repository.StoreGateway
	eventBus bus.EventBus
	catalog  *catalog.Catalog
}

// NewCartHandlers creates the cart command handlers
func NewCartHandlers(appState *state.AppState, store repository.StoreGateway, eventBus bus.EventBus, cat *catalog.Catalog) *CartHandlers {
	return &CartHandlers{
		appState: appState,
		store:    store,
		eventBus: eventBus,
		catalog:  cat,
	}
}

// HandleAddToCart adds one unit of a product to the cart
func (h *CartHandlers) HandleAddToCart(ctx context.Context, cmd AddToCart) error {
	product, ok := h.catalog.ProductByID(cmd.ProductID)
	if !ok {
		return pkgerrors.NewNotFoundError("product")
	}

	cart, err := h.appState.Cart(ctx, cmd.UserID)
	if err != nil {
		return err
	}

	if err := cart.AddItem(product); err != nil {
		return err
	}

	h.publishEvents(ctx, cart)
	return h.persistCart(ctx, cart)
}

// HandleSetQuantity replaces a line's quantity; zero removes the line
func (h *CartHandlers) HandleSetQuantity(ctx context.Context, cmd SetCartQuantity) error {
	cart, err := h.appState.Cart(ctx, cmd.UserID)
	if err != nil {
		return err
	}

	if err := cart.SetQuantity(cmd.ProductID, cmd.Quantity); err != nil {
		return err
	}

	h.publishEvents(ctx, cart)
	return h.persistCart(ctx, cart)
}

// persistCart writes the whole cart collection, retrying once
func (h *CartHandlers) persistCart(ctx context.Context, cart *aggregate.Cart) error {
	err := h.store.Set(ctx, cart.UserID(), repository.KeyCart, cart.Items())
	if err == nil {
		return nil
	}

	logger.L().Warn("cart write failed, retrying",
		zap.String("user_id", cart.UserID()),
		zap.Error(err),
	)
	if err := h.store.Set(ctx, cart.UserID(), repository.KeyCart, cart.Items()); err != nil {
		logger.L().Error("cart write failed after retry",
			zap.String("user_id", cart.UserID()),
			zap.Error(err),
		)
		return pkgerrors.NewPersistenceError("cart could not be saved")
	}
	return nil
}

func (h *CartHandlers) publishEvents(ctx context.Context, cart *aggregate.Cart) {
	for _, ev := range cart.GetUncommittedEvents() {
		if err := h.eventBus.Publish(ctx, ev); err != nil {
			logger.L().Warn("event publish failed", zap.String("event", ev.EventType()), zap.Error(err))
		}
	}
	cart.ClearUncommittedEvents()
}
