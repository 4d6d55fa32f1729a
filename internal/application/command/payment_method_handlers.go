package command

import (
	"context"
	"time"

	"go.uber.org/zap"

	"rifq-petcare/internal/domain/aggregate"
	"rifq-petcare/internal/domain/event"
	"rifq-petcare/internal/domain/repository"
	"rifq-petcare/internal/infrastructure/bus"
	"rifq-petcare/pkg/logger"

	pkgerrors "rifq-petcare/pkg/errors"
)

// PaymentMethodHandlers manages the user's saved payment options
type PaymentMethodHandlers struct {
	store    repository.StoreGateway
	eventBus bus.EventBus
}

// NewPaymentMethodHandlers creates the payment method command handlers
func NewPaymentMethodHandlers(store repository.StoreGateway, eventBus bus.EventBus) *PaymentMethodHandlers {
	return &PaymentMethodHandlers{store: store, eventBus: eventBus}
}

// HandleAdd saves a new payment method
func (h *PaymentMethodHandlers) HandleAdd(ctx context.Context, cmd AddPaymentMethod) (aggregate.PaymentMethods, error) {
	methods, err := loadPaymentMethods(ctx, h.store, cmd.UserID)
	if err != nil {
		return nil, err
	}

	methods, err = methods.Add(cmd.Kind, cmd.Brand, cmd.Last4)
	if err != nil {
		return nil, err
	}

	if err := h.store.Set(ctx, cmd.UserID, repository.KeyPaymentMethods, methods); err != nil {
		return nil, pkgerrors.NewPersistenceError("payment methods could not be saved")
	}
	return methods, nil
}

// HandleSetDefault marks one method as default; every other entry's flag is
// cleared in the same write.
func (h *PaymentMethodHandlers) HandleSetDefault(ctx context.Context, cmd SetDefaultPaymentMethod) (aggregate.PaymentMethods, error) {
	methods, err := loadPaymentMethods(ctx, h.store, cmd.UserID)
	if err != nil {
		return nil, err
	}

	if err := methods.SetDefault(cmd.PaymentMethodID); err != nil {
		return nil, err
	}

	if err := h.store.Set(ctx, cmd.UserID, repository.KeyPaymentMethods, methods); err != nil {
		return nil, pkgerrors.NewPersistenceError("payment methods could not be saved")
	}

	ev := &event.DefaultPaymentMethodChanged{
		UserID:          cmd.UserID,
		PaymentMethodID: cmd.PaymentMethodID,
		Timestamp:       time.Now(),
	}
	if err := h.eventBus.Publish(ctx, ev); err != nil {
		logger.L().Warn("event publish failed", zap.String("event", ev.EventType()), zap.Error(err))
	}

	return methods, nil
}

// loadPaymentMethods reads the collection, seeding a fresh account's defaults
// on first access.
func loadPaymentMethods(ctx context.Context, store repository.StoreGateway, userID string) (aggregate.PaymentMethods, error) {
	var methods aggregate.PaymentMethods
	found, err := store.Get(ctx, userID, repository.KeyPaymentMethods, &methods)
	if err != nil {
		return nil, err
	}
	if !found {
		methods = aggregate.SeedPaymentMethods()
		if err := store.Set(ctx, userID, repository.KeyPaymentMethods, methods); err != nil {
			return nil, pkgerrors.NewPersistenceError("payment methods could not be saved")
		}
	}
	return methods, nil
}
