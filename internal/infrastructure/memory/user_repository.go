package memory

import (
	"context"
	"sync"

	"rifq-petcare/internal/domain/aggregate"
	"rifq-petcare/internal/domain/repository"

	pkgerrors "rifq-petcare/pkg/errors"
)

// UserRepository implements repository.UserRepository in memory
type UserRepository struct {
	mu      sync.RWMutex
	byID    map[string]aggregate.User
	byEmail map[string]string
}

// NewUserRepository creates an empty in-memory user repository
func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:    make(map[string]aggregate.User),
		byEmail: make(map[string]string),
	}
}

var _ repository.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) Create(ctx context.Context, user *aggregate.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return pkgerrors.NewConflictError("email already registered")
	}
	r.byID[user.ID] = *user
	r.byEmail[user.Email] = user.ID
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*aggregate.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, pkgerrors.NewNotFoundError("user")
	}
	out := user
	return &out, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*aggregate.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, pkgerrors.NewNotFoundError("user")
	}
	user := r.byID[id]
	out := user
	return &out, nil
}

func (r *UserRepository) Update(ctx context.Context, user *aggregate.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[user.ID]; !ok {
		return pkgerrors.NewNotFoundError("user")
	}
	r.byID[user.ID] = *user
	return nil
}
