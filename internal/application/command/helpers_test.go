package command

import (
	"context"
	"errors"
	"testing"

	"rifq-petcare/internal/application/state"
	"rifq-petcare/internal/domain/catalog"
	"rifq-petcare/internal/infrastructure/bus"
	"rifq-petcare/internal/infrastructure/memory"
)

var errStoreDown = errors.New("store unavailable")

// flakyStore wraps the in-memory gateway with injectable write failures
type flakyStore struct {
	*memory.StoreGateway

	failSets    int
	failSetMany bool
	setCalls    int
}

func newFlakyStore() *flakyStore {
	return &flakyStore{StoreGateway: memory.NewStoreGateway()}
}

func (s *flakyStore) Set(ctx context.Context, userID, key string, value interface{}) error {
	s.setCalls++
	if s.failSets > 0 {
		s.failSets--
		return errStoreDown
	}
	return s.StoreGateway.Set(ctx, userID, key, value)
}

func (s *flakyStore) SetMany(ctx context.Context, userID string, entries map[string]interface{}) error {
	if s.failSetMany {
		return errStoreDown
	}
	return s.StoreGateway.SetMany(ctx, userID, entries)
}

type testEnv struct {
	store    *flakyStore
	appState *state.AppState
	eventBus bus.EventBus
	catalog  *catalog.Catalog
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := newFlakyStore()
	return &testEnv{
		store:    store,
		appState: state.New(store),
		eventBus: bus.NewInMemoryEventBus(),
		catalog:  catalog.New(),
	}
}
