package mongo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"rifq-petcare/internal/domain/repository"
)

// storeDocument is one persisted collection: the whole list under one key for
// one user, serialized as JSON so reads round-trip exactly what was written.
type storeDocument struct {
	ID        string    `bson:"_id"`
	UserID    string    `bson:"user_id"`
	Key       string    `bson:"key"`
	Data      string    `bson:"data"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// StoreGateway implements repository.StoreGateway on MongoDB. Every Set is a
// full-document replace; SetMany wraps its writes in a session transaction.
type StoreGateway struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewStoreGateway creates a store gateway over the "collections" collection
func NewStoreGateway(client *mongo.Client, database *mongo.Database) *StoreGateway {
	return &StoreGateway{
		client:     client,
		collection: database.Collection("collections"),
	}
}

var _ repository.StoreGateway = (*StoreGateway)(nil)

func docID(userID, key string) string {
	return userID + ":" + key
}

// Get reads the collection stored under key for the user
func (g *StoreGateway) Get(ctx context.Context, userID, key string, out interface{}) (bool, error) {
	var doc storeDocument
	err := g.collection.FindOne(ctx, bson.M{"_id": docID(userID, key)}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(doc.Data), out); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

// Set replaces the collection stored under key for the user
func (g *StoreGateway) Set(ctx context.Context, userID, key string, value interface{}) error {
	return g.set(ctx, userID, key, value)
}

// SetMany replaces several collections in one transaction. Either all writes
// commit or none does.
func (g *StoreGateway) SetMany(ctx context.Context, userID string, entries map[string]interface{}) error {
	session, err := g.client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		for key, value := range entries {
			if err := g.set(sc, userID, key, value); err != nil {
				return nil, err
			}
		}
		return nil, nil
	})
	if err != nil {
		return fmt.Errorf("transactional write failed: %w", err)
	}
	return nil
}

func (g *StoreGateway) set(ctx context.Context, userID, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	doc := storeDocument{
		ID:        docID(userID, key),
		UserID:    userID,
		Key:       key,
		Data:      string(data),
		UpdatedAt: time.Now(),
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := g.collection.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, opts); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
