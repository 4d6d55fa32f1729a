package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"rifq-petcare/internal/domain/aggregate"
	"rifq-petcare/internal/domain/repository"

	pkgerrors "rifq-petcare/pkg/errors"
)

// UserRepository implements repository.UserRepository on MongoDB
type UserRepository struct {
	collection *mongo.Collection
}

// NewUserRepository creates a user repository over the "users" collection
func NewUserRepository(database *mongo.Database) *UserRepository {
	return &UserRepository{
		collection: database.Collection("users"),
	}
}

var _ repository.UserRepository = (*UserRepository)(nil)

// Create inserts a new user. Duplicate emails are rejected.
func (r *UserRepository) Create(ctx context.Context, user *aggregate.User) error {
	count, err := r.collection.CountDocuments(ctx, bson.M{"email": user.Email})
	if err != nil {
		return fmt.Errorf("failed to check email: %w", err)
	}
	if count > 0 {
		return pkgerrors.NewConflictError("email already registered")
	}

	if _, err := r.collection.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// GetByID loads a user by id
func (r *UserRepository) GetByID(ctx context.Context, id string) (*aggregate.User, error) {
	var user aggregate.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, pkgerrors.NewNotFoundError("user")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read user: %w", err)
	}
	return &user, nil
}

// GetByEmail loads a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*aggregate.User, error) {
	var user aggregate.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, pkgerrors.NewNotFoundError("user")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read user: %w", err)
	}
	return &user, nil
}

// Update replaces the user document
func (r *UserRepository) Update(ctx context.Context, user *aggregate.User) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": user.ID}, user)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if result.MatchedCount == 0 {
		return pkgerrors.NewNotFoundError("user")
	}
	return nil
}
