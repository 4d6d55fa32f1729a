package event

import "time"

// CartItemAdded event
type CartItemAdded struct {
	UserID    string    `json:"user_id"`
	ProductID string    `json:"product_id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *CartItemAdded) EventType() string     { return "CartItemAdded" }
func (e *CartItemAdded) AggregateID() string   { return e.UserID }
func (e *CartItemAdded) OccurredAt() time.Time { return e.Timestamp }

// CartQuantityChanged event
type CartQuantityChanged struct {
	UserID    string    `json:"user_id"`
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Removed   bool      `json:"removed"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *CartQuantityChanged) EventType() string     { return "CartQuantityChanged" }
func (e *CartQuantityChanged) AggregateID() string   { return e.UserID }
func (e *CartQuantityChanged) OccurredAt() time.Time { return e.Timestamp }

// CartCleared event
type CartCleared struct {
	UserID    string    `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *CartCleared) EventType() string     { return "CartCleared" }
func (e *CartCleared) AggregateID() string   { return e.UserID }
func (e *CartCleared) OccurredAt() time.Time { return e.Timestamp }
