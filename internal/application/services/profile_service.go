package services

import (
	"context"

	"rifq-petcare/internal/application/command"
	"rifq-petcare/internal/application/query"
	"rifq-petcare/internal/domain/aggregate"
	"rifq-petcare/internal/infrastructure/projection"
)

// ProfileService orchestrates the profile screen: counters and payment
// methods
type ProfileService struct {
	paymentHandlers *command.PaymentMethodHandlers
	profileQueries  *query.ProfileQueries
}

func NewProfileService(
	paymentHandlers *command.PaymentMethodHandlers,
	profileQueries *query.ProfileQueries,
) *ProfileService {
	return &ProfileService{
		paymentHandlers: paymentHandlers,
		profileQueries:  profileQueries,
	}
}

// Command operations
func (s *ProfileService) AddPaymentMethod(ctx context.Context, cmd command.AddPaymentMethod) (aggregate.PaymentMethods, error) {
	return s.paymentHandlers.HandleAdd(ctx, cmd)
}

func (s *ProfileService) SetDefaultPaymentMethod(ctx context.Context, cmd command.SetDefaultPaymentMethod) (aggregate.PaymentMethods, error) {
	return s.paymentHandlers.HandleSetDefault(ctx, cmd)
}

// Query operations
func (s *ProfileService) GetStats(ctx context.Context, userID string) (projection.ProfileStats, error) {
	return s.profileQueries.GetStats(ctx, userID)
}

func (s *ProfileService) ListPaymentMethods(ctx context.Context, userID string) (aggregate.PaymentMethods, error) {
	return s.profileQueries.ListPaymentMethods(ctx, userID)
}
