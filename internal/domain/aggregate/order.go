package aggregate

import (
	"math"
	"strconv"
	"time"

	pkgerrors "rifq-petcare/pkg/errors"
)

// OrderStatus enumerates order states
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderItem is a snapshot of one cart line at commit time. Name and price are
// copied, not referenced, so later catalog changes never alter past orders.
type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Order is a committed purchase. Immutable after creation.
type Order struct {
	ID     string      `json:"id"`
	Date   string      `json:"date"`
	Total  float64     `json:"total"`
	Status OrderStatus `json:"status"`
	Items  []OrderItem `json:"items"`
}

// NewOrderFromCart snapshots the cart lines into a pending order. The cart
// must be non-empty.
func NewOrderFromCart(cart *Cart, now time.Time) (*Order, error) {
	if cart.IsEmpty() {
		return nil, pkgerrors.NewEmptyCartError()
	}

	items := make([]OrderItem, 0, len(cart.Items()))
	var total float64
	for _, line := range cart.Items() {
		items = append(items, OrderItem{
			Name:     line.Product.Name,
			Quantity: line.Quantity,
			Price:    line.Product.Price,
		})
		total += line.Product.Price * float64(line.Quantity)
	}

	return &Order{
		ID:     strconv.FormatInt(now.UnixMilli(), 10),
		Date:   now.Format("2006-01-02"),
		Total:  roundCurrency(total),
		Status: OrderStatusPending,
		Items:  items,
	}, nil
}

// roundCurrency keeps totals at two decimal places
func roundCurrency(v float64) float64 {
	return math.Round(v*100) / 100
}
