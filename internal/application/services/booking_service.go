package services

import (
	"context"

	"rifq-petcare/internal/application/command"
	"rifq-petcare/internal/application/query"
	"rifq-petcare/internal/domain/aggregate"
	"rifq-petcare/internal/domain/catalog"
)

// BookingService orchestrates the appointment booking dialog and the booked
// appointment list
type BookingService struct {
	bookingHandlers *command.BookingHandlers
	bookingQueries  *query.BookingQueries
	catalogQueries  *query.CatalogQueries
}

func NewBookingService(
	bookingHandlers *command.BookingHandlers,
	bookingQueries *query.BookingQueries,
	catalogQueries *query.CatalogQueries,
) *BookingService {
	return &BookingService{
		bookingHandlers: bookingHandlers,
		bookingQueries:  bookingQueries,
		catalogQueries:  catalogQueries,
	}
}

// Command operations
func (s *BookingService) Start(ctx context.Context, cmd command.StartBooking) error {
	return s.bookingHandlers.HandleStart(ctx, cmd)
}

func (s *BookingService) SelectDate(ctx context.Context, cmd command.SelectBookingDate) error {
	return s.bookingHandlers.HandleSelectDate(ctx, cmd)
}

func (s *BookingService) SelectTime(ctx context.Context, cmd command.SelectBookingTime) error {
	return s.bookingHandlers.HandleSelectTime(ctx, cmd)
}

func (s *BookingService) SelectCustomTime(ctx context.Context, cmd command.SelectBookingCustomTime) error {
	return s.bookingHandlers.HandleSelectCustomTime(ctx, cmd)
}

func (s *BookingService) EnterDetails(ctx context.Context, cmd command.EnterBookingDetails) error {
	return s.bookingHandlers.HandleEnterDetails(ctx, cmd)
}

func (s *BookingService) Back(ctx context.Context, userID string) error {
	return s.bookingHandlers.HandleBack(ctx, userID)
}

func (s *BookingService) Dismiss(ctx context.Context, userID string) {
	s.bookingHandlers.HandleDismiss(ctx, userID)
}

func (s *BookingService) Submit(ctx context.Context, cmd command.SubmitBooking) (*aggregate.Appointment, error) {
	return s.bookingHandlers.HandleSubmit(ctx, cmd)
}

func (s *BookingService) CancelAppointment(ctx context.Context, cmd command.CancelAppointment) error {
	return s.bookingHandlers.HandleCancelAppointment(ctx, cmd)
}

// Query operations
func (s *BookingService) ListAppointments(ctx context.Context, userID string) ([]aggregate.Appointment, error) {
	return s.bookingQueries.ListAppointments(ctx, userID)
}

func (s *BookingService) GetBooking(userID string) (query.BookingView, error) {
	return s.bookingQueries.GetBooking(userID)
}

func (s *BookingService) ListClinics(search string) []catalog.Clinic {
	return s.catalogQueries.ListClinics(search)
}

func (s *BookingService) GetClinic(id string) (catalog.Clinic, error) {
	return s.catalogQueries.GetClinic(id)
}

func (s *BookingService) ListServices() []catalog.Service {
	return s.catalogQueries.ListServices()
}

func (s *BookingService) GetBookingOptions() query.BookingOptions {
	return s.catalogQueries.GetBookingOptions()
}
