package errors

import "fmt"

// ApplicationError represents a domain-specific error
type ApplicationError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (e *ApplicationError) Error() string {
	return e.Message
}

// Error constructors
func NewValidationError(message string) *ApplicationError {
	return &ApplicationError{
		Code:    "VALIDATION_ERROR",
		Message: message,
		Status:  400,
	}
}

func NewNotFoundError(resource string) *ApplicationError {
	return &ApplicationError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
		Status:  404,
	}
}

func NewConflictError(message string) *ApplicationError {
	return &ApplicationError{
		Code:    "CONFLICT",
		Message: message,
		Status:  409,
	}
}

func NewUnauthorizedError(message string) *ApplicationError {
	return &ApplicationError{
		Code:    "UNAUTHORIZED",
		Message: message,
		Status:  401,
	}
}

func NewOutOfStockError(productName string) *ApplicationError {
	return &ApplicationError{
		Code:    "OUT_OF_STOCK",
		Message: fmt.Sprintf("%s is out of stock", productName),
		Status:  409,
	}
}

func NewEmptyCartError() *ApplicationError {
	return &ApplicationError{
		Code:    "EMPTY_CART",
		Message: "cart is empty",
		Status:  400,
	}
}

func NewInvalidQRError() *ApplicationError {
	return &ApplicationError{
		Code:    "INVALID_QR",
		Message: "invalid code",
		Status:  400,
	}
}

func NewPersistenceError(message string) *ApplicationError {
	return &ApplicationError{
		Code:    "PERSISTENCE_ERROR",
		Message: message,
		Status:  500,
	}
}

func NewRequestTimeoutError(message string) *ApplicationError {
	return &ApplicationError{
		Code:    "REQUEST_TIMEOUT",
		Message: message,
		Status:  408,
	}
}

func NewTooManyRequestsError(message string) *ApplicationError {
	return &ApplicationError{
		Code:    "TOO_MANY_REQUESTS",
		Message: message,
		Status:  429,
	}
}

func NewInternalError(message string) *ApplicationError {
	return &ApplicationError{
		Code:    "INTERNAL_ERROR",
		Message: message,
		Status:  500,
	}
}
