package repository

import (
	"context"

	"rifq-petcare/internal/domain/aggregate"
)

// UserRepository persists account profiles
type UserRepository interface {
	Create(ctx context.Context, user *aggregate.User) error
	GetByID(ctx context.Context, id string) (*aggregate.User, error)
	GetByEmail(ctx context.Context, email string) (*aggregate.User, error)
	Update(ctx context.Context, user *aggregate.User) error
}
