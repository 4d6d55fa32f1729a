// Package memory provides in-memory adapters with the same contracts as the
// Mongo implementations. They back local runs without a database and the
// package tests.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"rifq-petcare/internal/domain/repository"
)

// StoreGateway implements repository.StoreGateway in memory. Values are kept
// as serialized JSON so reads exercise the same round-trip as the durable
// implementation.
type StoreGateway struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewStoreGateway creates an empty in-memory store
func NewStoreGateway() *StoreGateway {
	return &StoreGateway{data: make(map[string][]byte)}
}

var _ repository.StoreGateway = (*StoreGateway)(nil)

func storeKey(userID, key string) string {
	return userID + ":" + key
}

// Get reads the collection stored under key for the user
func (g *StoreGateway) Get(ctx context.Context, userID, key string, out interface{}) (bool, error) {
	g.mu.RLock()
	raw, ok := g.data[storeKey(userID, key)]
	g.mu.RUnlock()

	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

// Set replaces the collection stored under key for the user
func (g *StoreGateway) Set(ctx context.Context, userID, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	g.mu.Lock()
	g.data[storeKey(userID, key)] = raw
	g.mu.Unlock()
	return nil
}

// SetMany replaces several collections atomically: all entries are encoded
// first, then installed under one lock.
func (g *StoreGateway) SetMany(ctx context.Context, userID string, entries map[string]interface{}) error {
	encoded := make(map[string][]byte, len(entries))
	for key, value := range entries {
		raw, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", key, err)
		}
		encoded[storeKey(userID, key)] = raw
	}

	g.mu.Lock()
	for k, raw := range encoded {
		g.data[k] = raw
	}
	g.mu.Unlock()
	return nil
}
