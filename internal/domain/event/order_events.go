package event

import "time"

// OrderPlaced event
type OrderPlaced struct {
	OrderID   string    `json:"order_id"`
	UserID    string    `json:"user_id"`
	Total     float64   `json:"total"`
	ItemCount int       `json:"item_count"`
	Payment   string    `json:"payment"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *OrderPlaced) EventType() string     { return "OrderPlaced" }
func (e *OrderPlaced) AggregateID() string   { return e.OrderID }
func (e *OrderPlaced) OccurredAt() time.Time { return e.Timestamp }

// DefaultPaymentMethodChanged event
type DefaultPaymentMethodChanged struct {
	UserID          string    `json:"user_id"`
	PaymentMethodID string    `json:"payment_method_id"`
	Timestamp       time.Time `json:"timestamp"`
}

func (e *DefaultPaymentMethodChanged) EventType() string     { return "DefaultPaymentMethodChanged" }
func (e *DefaultPaymentMethodChanged) AggregateID() string   { return e.UserID }
func (e *DefaultPaymentMethodChanged) OccurredAt() time.Time { return e.Timestamp }
