package aggregate

import (
	"github.com/google/uuid"

	pkgerrors "rifq-petcare/pkg/errors"
)

// PaymentMethodKind enumerates supported payment kinds
type PaymentMethodKind string

const (
	PaymentKindCard     PaymentMethodKind = "card"
	PaymentKindPayPal   PaymentMethodKind = "paypal"
	PaymentKindApplePay PaymentMethodKind = "apple_pay"
)

// ValidPaymentKind reports whether the kind is one of the supported values
func ValidPaymentKind(k PaymentMethodKind) bool {
	switch k {
	case PaymentKindCard, PaymentKindPayPal, PaymentKindApplePay:
		return true
	}
	return false
}

// PaymentMethod is one saved payment option
type PaymentMethod struct {
	ID        string            `json:"id"`
	Kind      PaymentMethodKind `json:"type"`
	Last4     string            `json:"last4,omitempty"`
	Brand     string            `json:"brand,omitempty"`
	IsDefault bool              `json:"isDefault"`
}

// PaymentMethods is the user's saved payment options. At most one entry is
// the default at any time.
type PaymentMethods []PaymentMethod

// SeedPaymentMethods returns the options a fresh account starts with
func SeedPaymentMethods() PaymentMethods {
	return PaymentMethods{
		{ID: "1", Kind: PaymentKindCard, Last4: "1234", Brand: "Visa", IsDefault: true},
		{ID: "2", Kind: PaymentKindPayPal, IsDefault: false},
	}
}

// Add appends a new payment method. The first method added to an empty list
// becomes the default.
func (pm PaymentMethods) Add(kind PaymentMethodKind, brand, last4 string) (PaymentMethods, error) {
	if !ValidPaymentKind(kind) {
		return pm, pkgerrors.NewValidationError("unsupported payment method")
	}
	method := PaymentMethod{
		ID:        uuid.New().String(),
		Kind:      kind,
		Brand:     brand,
		Last4:     last4,
		IsDefault: len(pm) == 0,
	}
	return append(pm, method), nil
}

// SetDefault marks the given method as default and clears every other entry's
// flag. Exactly one entry holds the flag afterwards.
func (pm PaymentMethods) SetDefault(id string) error {
	found := false
	for i := range pm {
		if pm[i].ID == id {
			found = true
			break
		}
	}
	if !found {
		return pkgerrors.NewNotFoundError("payment method")
	}

	for i := range pm {
		pm[i].IsDefault = pm[i].ID == id
	}
	return nil
}

// Default returns the current default method, if any
func (pm PaymentMethods) Default() (PaymentMethod, bool) {
	for _, m := range pm {
		if m.IsDefault {
			return m, true
		}
	}
	return PaymentMethod{}, false
}
