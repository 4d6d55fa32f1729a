package command

import (
	"context"
	"time"

	"go.uber.org/zap"

	"rifq-petcare/internal/application/state"
	"rifq-petcare/internal/domain/aggregate"
	"rifq-petcare/internal/domain/event"
	"rifq-petcare/internal/domain/repository"
	"rifq-petcare/internal/infrastructure/bus"
	"rifq-petcare/pkg/logger"

	pkgerrors "rifq-petcare/pkg/errors"
)

// CheckoutHandler converts the cart into a persisted order. The order append
// and the cart clear are written as one transactional unit: a failure leaves
// both the persisted cart and the in-memory cart untouched.
type CheckoutHandler struct {
	appState *state.AppState
	store    repository.StoreGateway
	eventBus bus.EventBus
	now      func() time.Time
}

// NewCheckoutHandler creates the checkout handler
func NewCheckoutHandler(appState *state.AppState, store repository.StoreGateway, eventBus bus.EventBus) *CheckoutHandler {
	return &CheckoutHandler{
		appState: appState,
		store:    store,
		eventBus: eventBus,
		now:      time.Now,
	}
}

// Handle validates the checkout form and commits the order
func (h *CheckoutHandler) Handle(ctx context.Context, cmd Checkout) (*aggregate.Order, error) {
	cart, err := h.appState.Cart(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, pkgerrors.NewEmptyCartError()
	}

	// Presence-only validation; email format is checked at signup, not here
	if cmd.FullName == "" || cmd.Email == "" || cmd.Address == "" {
		return nil, pkgerrors.NewValidationError("يرجى ملء جميع الحقول المطلوبة")
	}
	payment := cmd.PaymentMethod
	if payment == "" {
		payment = aggregate.PaymentKindCard
	}
	if !aggregate.ValidPaymentKind(payment) {
		return nil, pkgerrors.NewValidationError("unsupported payment method")
	}

	order, err := aggregate.NewOrderFromCart(cart, h.now())
	if err != nil {
		return nil, err
	}

	var orders []aggregate.Order
	if _, err := h.store.Get(ctx, cmd.UserID, repository.KeyOrders, &orders); err != nil {
		return nil, err
	}
	orders = append(orders, *order)

	// One atomic write: order append + cart clear. On failure neither side
	// changes, durably or in memory.
	err = h.store.SetMany(ctx, cmd.UserID, map[string]interface{}{
		repository.KeyOrders: orders,
		repository.KeyCart:   []aggregate.CartItem{},
	})
	if err != nil {
		logger.L().Error("checkout commit failed",
			zap.String("user_id", cmd.UserID),
			zap.String("order_id", order.ID),
			zap.Error(err),
		)
		return nil, pkgerrors.NewPersistenceError("order could not be saved")
	}

	cart.Clear()
	cart.ClearUncommittedEvents()

	ev := &event.OrderPlaced{
		OrderID:   order.ID,
		UserID:    cmd.UserID,
		Total:     order.Total,
		ItemCount: len(order.Items),
		Payment:   string(payment),
		Timestamp: h.now(),
	}
	if err := h.eventBus.Publish(ctx, ev); err != nil {
		logger.L().Warn("event publish failed", zap.String("event", ev.EventType()), zap.Error(err))
	}

	return order, nil
}
