package aggregate

import (
	"fmt"
	"time"

	"rifq-petcare/internal/domain/catalog"
	"rifq-petcare/internal/domain/event"

	pkgerrors "rifq-petcare/pkg/errors"
)

// CartItem is one line of the shopping cart. The product is embedded as a
// snapshot so the persisted cart survives catalog reloads.
type CartItem struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Cart holds the shopping session for one user. At most one entry exists per
// product id; adding the same product again increments its quantity.
type Cart struct {
	userID string
	items  []CartItem

	uncommittedEvents []event.DomainEvent
}

// NewCart creates an empty cart for the given user
func NewCart(userID string) (*Cart, error) {
	if userID == "" {
		return nil, fmt.Errorf("userID cannot be empty")
	}
	return &Cart{userID: userID}, nil
}

// NewCartFromItems restores a cart from its persisted items. Lines with a
// non-positive quantity are dropped rather than wedging the cart on corrupt
// data; the next persisted write rewrites the whole collection without them.
func NewCartFromItems(userID string, items []CartItem) (*Cart, error) {
	cart, err := NewCart(userID)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		if it.Quantity < 1 {
			continue
		}
		cart.items = append(cart.items, it)
	}
	return cart, nil
}

// AddItem puts one unit of the product in the cart. Out-of-stock products are
// rejected without mutating the cart.
func (c *Cart) AddItem(product catalog.Product) error {
	if product.ID == "" {
		return pkgerrors.NewValidationError("product id is required")
	}
	if !product.InStock {
		return pkgerrors.NewOutOfStockError(product.Name)
	}

	for i := range c.items {
		if c.items[i].Product.ID == product.ID {
			c.items[i].Quantity++
			c.raiseEvent(&event.CartItemAdded{
				UserID:    c.userID,
				ProductID: product.ID,
				Name:      product.Name,
				Quantity:  c.items[i].Quantity,
				Timestamp: time.Now(),
			})
			return nil
		}
	}

	c.items = append(c.items, CartItem{Product: product, Quantity: 1})
	c.raiseEvent(&event.CartItemAdded{
		UserID:    c.userID,
		ProductID: product.ID,
		Name:      product.Name,
		Quantity:  1,
		Timestamp: time.Now(),
	})
	return nil
}

// SetQuantity replaces the quantity for a product; zero removes the entry.
// Unknown product ids are a no-op.
func (c *Cart) SetQuantity(productID string, quantity int) error {
	if quantity < 0 {
		return pkgerrors.NewValidationError("quantity cannot be negative")
	}

	for i := range c.items {
		if c.items[i].Product.ID != productID {
			continue
		}
		if quantity == 0 {
			c.items = append(c.items[:i], c.items[i+1:]...)
		} else {
			c.items[i].Quantity = quantity
		}
		c.raiseEvent(&event.CartQuantityChanged{
			UserID:    c.userID,
			ProductID: productID,
			Quantity:  quantity,
			Removed:   quantity == 0,
			Timestamp: time.Now(),
		})
		return nil
	}
	return nil
}

// TotalPrice returns the sum of price times quantity over all entries
func (c *Cart) TotalPrice() float64 {
	var total float64
	for _, it := range c.items {
		total += it.Product.Price * float64(it.Quantity)
	}
	return total
}

// TotalItemCount returns the sum of all quantities
func (c *Cart) TotalItemCount() int {
	var count int
	for _, it := range c.items {
		count += it.Quantity
	}
	return count
}

// Clear empties the cart
func (c *Cart) Clear() {
	c.items = nil
	c.raiseEvent(&event.CartCleared{
		UserID:    c.userID,
		Timestamp: time.Now(),
	})
}

// IsEmpty reports whether the cart has no entries
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Items returns a copy of the cart lines in insertion order
func (c *Cart) Items() []CartItem {
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// UserID returns the owning user id
func (c *Cart) UserID() string { return c.userID }

func (c *Cart) GetUncommittedEvents() []event.DomainEvent {
	return c.uncommittedEvents
}

func (c *Cart) ClearUncommittedEvents() {
	c.uncommittedEvents = nil
}

func (c *Cart) raiseEvent(ev event.DomainEvent) {
	c.uncommittedEvents = append(c.uncommittedEvents, ev)
}
