package query

import (
	"context"

	"rifq-petcare/internal/application/state"
	"rifq-petcare/internal/domain/aggregate"
	"rifq-petcare/internal/domain/repository"

	pkgerrors "rifq-petcare/pkg/errors"
)

// BookingView is the in-progress booking dialog state
type BookingView struct {
	ClinicName  string                       `json:"clinicName"`
	ServiceName string                       `json:"serviceName"`
	Step        string                       `json:"step"`
	Date        string                       `json:"date"`
	Time        string                       `json:"time"`
	Details     aggregate.AppointmentDetails `json:"details"`
}

// BookingQueries serves the appointment read side
type BookingQueries struct {
	appState *state.AppState
	store    repository.StoreGateway
}

// NewBookingQueries creates the appointment read side
func NewBookingQueries(appState *state.AppState, store repository.StoreGateway) *BookingQueries {
	return &BookingQueries{
		appState: appState,
		store:    store,
	}
}

// ListAppointments returns the user's booked appointments
func (q *BookingQueries) ListAppointments(ctx context.Context, userID string) ([]aggregate.Appointment, error) {
	var appointments []aggregate.Appointment
	if _, err := q.store.Get(ctx, userID, repository.KeyAppointments, &appointments); err != nil {
		return nil, err
	}
	if appointments == nil {
		appointments = []aggregate.Appointment{}
	}
	return appointments, nil
}

// GetBooking returns the user's open booking dialog state
func (q *BookingQueries) GetBooking(userID string) (BookingView, error) {
	w, ok := q.appState.Booking(userID)
	if !ok {
		return BookingView{}, pkgerrors.NewNotFoundError("booking in progress")
	}
	return BookingView{
		ClinicName:  w.Clinic().Name,
		ServiceName: w.Service().Name,
		Step:        w.Step().String(),
		Date:        w.SelectedDate(),
		Time:        w.SelectedTime(),
		Details:     w.Details(),
	}, nil
}
