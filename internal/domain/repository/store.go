package repository

import "context"

// Collection keys persisted through the store gateway. Every key maps to one
// whole list that is always read and written in full.
const (
	KeyAppointments   = "appointments"
	KeyPets           = "pets"
	KeyCart           = "cart"
	KeyOrders         = "orders"
	KeyPaymentMethods = "paymentMethods"
)

// StoreGateway is durable key-value storage of whole collections, scoped per
// user. There are no partial updates: Set replaces everything under the key.
// Get of a missing key reports found=false, not an error.
type StoreGateway interface {
	// Get unmarshals the collection under key into out and reports whether
	// the key existed.
	Get(ctx context.Context, userID, key string, out interface{}) (bool, error)

	// Set replaces the collection under key.
	Set(ctx context.Context, userID, key string, value interface{}) error

	// SetMany replaces several collections as one atomic write. Either every
	// entry is persisted or none is.
	SetMany(ctx context.Context, userID string, entries map[string]interface{}) error
}
