package bus

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"rifq-petcare/internal/domain/event"
)

// EventBus carries domain events from the command handlers to the read-side
// projections.
type EventBus interface {
	Publish(ctx context.Context, event event.DomainEvent) error
	Subscribe(eventType string, handler EventHandler) error
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler handles domain events
type EventHandler interface {
	Handle(ctx context.Context, event event.DomainEvent) error
}

// EventHandlerFunc allows functions to implement EventHandler
type EventHandlerFunc func(ctx context.Context, event event.DomainEvent) error

func (f EventHandlerFunc) Handle(ctx context.Context, event event.DomainEvent) error {
	return f(ctx, event)
}

// On subscribes a typed handler for one event type, unwrapping the payload
// before the call so subscribers take their concrete event type directly.
func On[T event.DomainEvent](b EventBus, eventType string, fn func(ctx context.Context, e T) error) error {
	return b.Subscribe(eventType, EventHandlerFunc(func(ctx context.Context, e event.DomainEvent) error {
		typed, ok := e.(T)
		if !ok {
			return fmt.Errorf("unexpected payload %T for event %s", e, eventType)
		}
		return fn(ctx, typed)
	}))
}

// InMemoryEventBus implements EventBus in memory. Handlers run synchronously
// in publish order, so an event is fully projected before the command that
// raised it returns.
type InMemoryEventBus struct {
	mu       sync.RWMutex
	handlers map[string][]EventHandler
	running  bool
}

func NewInMemoryEventBus() EventBus {
	return &InMemoryEventBus{
		handlers: make(map[string][]EventHandler),
	}
}

// Publish delivers the event to every subscriber of its type. All handlers
// run even when an earlier one fails; their errors are joined.
func (b *InMemoryEventBus) Publish(ctx context.Context, e event.DomainEvent) error {
	b.mu.RLock()
	handlers := b.handlers[e.EventType()]
	b.mu.RUnlock()

	var err error
	for _, handler := range handlers {
		if herr := handler.Handle(ctx, e); herr != nil {
			err = errors.Join(err, fmt.Errorf("handler error for %s: %w", e.EventType(), herr))
		}
	}
	return err
}

func (b *InMemoryEventBus) Subscribe(eventType string, handler EventHandler) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
	return nil
}

func (b *InMemoryEventBus) Start(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.running = true
	return nil
}

func (b *InMemoryEventBus) Stop() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.running = false
	return nil
}
