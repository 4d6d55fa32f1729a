package command

import "rifq-petcare/internal/domain/aggregate"

// Auth commands

type SignUp struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
}

type Login struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfile struct {
	UserID       string `json:"-"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Phone        string `json:"phone"`
	ProfileImage string `json:"profileImage"`
}

// Cart commands

type AddToCart struct {
	UserID    string `json:"-"`
	ProductID string `json:"productId"`
}

type SetCartQuantity struct {
	UserID    string `json:"-"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Checkout carries the fields of the order confirmation form. Email presence
// is required but its format is deliberately not verified here.
type Checkout struct {
	UserID        string                      `json:"-"`
	FullName      string                      `json:"name"`
	Email         string                      `json:"email"`
	Address       string                      `json:"address"`
	PaymentMethod aggregate.PaymentMethodKind `json:"paymentMethod"`
}

// Booking commands

type StartBooking struct {
	UserID    string `json:"-"`
	ClinicID  string `json:"clinicId"`
	ServiceID string `json:"serviceId"`
}

type SelectBookingDate struct {
	UserID string `json:"-"`
	Date   string `json:"date"`
}

// SelectBookingTime picks one of the fixed half-hour slots
type SelectBookingTime struct {
	UserID string `json:"-"`
	Time   string `json:"time"`
}

// SelectBookingCustomTime picks a time on the free-form hour/minute/period
// dial; it resolves to the same string form as the fixed slots
type SelectBookingCustomTime struct {
	UserID string `json:"-"`
	Hour   int    `json:"hour"`
	Minute int    `json:"minute"`
	Period string `json:"period"`
}

type EnterBookingDetails struct {
	UserID  string `json:"-"`
	PetName string `json:"petName"`
	PetType string `json:"petType"`
	Reason  string `json:"reason"`
	Phone   string `json:"phone"`
	Notes   string `json:"notes"`
}

type SubmitBooking struct {
	UserID string `json:"-"`
}

type CancelAppointment struct {
	UserID        string `json:"-"`
	AppointmentID string `json:"appointmentId"`
}

// Pet commands

type AddPet struct {
	UserID string `json:"-"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Gender string `json:"gender"`
	Breed  string `json:"breed"`
	Age    string `json:"age"`
	Image  string `json:"image"`
}

type UpdatePet struct {
	UserID string `json:"-"`
	PetID  string `json:"-"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Gender string `json:"gender"`
	Breed  string `json:"breed"`
	Age    string `json:"age"`
}

type AddVaccination struct {
	UserID      string                `json:"-"`
	PetID       string                `json:"-"`
	Vaccination aggregate.Vaccination `json:"vaccination"`
}

type RemoveVaccination struct {
	UserID string `json:"-"`
	PetID  string `json:"-"`
	Index  int    `json:"index"`
}

// Payment method commands

type AddPaymentMethod struct {
	UserID string                      `json:"-"`
	Kind   aggregate.PaymentMethodKind `json:"type"`
	Brand  string                      `json:"brand"`
	Last4  string                      `json:"last4"`
}

type SetDefaultPaymentMethod struct {
	UserID          string `json:"-"`
	PaymentMethodID string `json:"paymentMethodId"`
}
