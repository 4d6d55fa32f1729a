package command

import (
	"context"
	"time"

	"go.uber.org/zap"

	"rifq-petcare/internal/application/state"
	"rifq-petcare/internal/domain/aggregate"
	"rifq-petcare/internal/domain/catalog"
	"rifq-petcare/internal/domain/event"
	"rifq-petcare/internal/domain/repository"
	"rifq-petcare/internal/infrastructure/bus"
	"rifq-petcare/pkg/logger"

	pkgerrors "rifq-petcare/pkg/errors"
)

// BookingHandlers drives the date → time → details appointment form and the
// appointment collection it commits into.
type BookingHandlers struct {
	appState *state.AppState
	store    repository.StoreGateway
	eventBus bus.EventBus
	catalog  *catalog.Catalog
	now      func() time.Time
}

// NewBookingHandlers creates the booking command handlers
func NewBookingHandlers(appState *state.AppState, store repository.StoreGateway, eventBus bus.EventBus, cat *catalog.Catalog) *BookingHandlers {
	return &BookingHandlers{
		appState: appState,
		store:    store,
		eventBus: eventBus,
		catalog:  cat,
		now:      time.Now,
	}
}

// HandleStart opens a booking workflow for a clinic and service, replacing
// any abandoned one.
func (h *BookingHandlers) HandleStart(ctx context.Context, cmd StartBooking) error {
	clinic, ok := h.catalog.ClinicByID(cmd.ClinicID)
	if !ok {
		return pkgerrors.NewNotFoundError("clinic")
	}
	service, ok := h.catalog.ServiceByID(cmd.ServiceID)
	if !ok {
		return pkgerrors.NewNotFoundError("service")
	}

	workflow, err := aggregate.NewBookingWorkflow(clinic, service)
	if err != nil {
		return pkgerrors.NewValidationError(err.Error())
	}
	h.appState.StartBooking(cmd.UserID, workflow)
	return nil
}

// HandleSelectDate records the chosen date
func (h *BookingHandlers) HandleSelectDate(ctx context.Context, cmd SelectBookingDate) error {
	workflow, err := h.workflow(cmd.UserID)
	if err != nil {
		return err
	}
	return workflow.SelectDate(cmd.Date)
}

// HandleSelectTime records one of the fixed half-hour slots
func (h *BookingHandlers) HandleSelectTime(ctx context.Context, cmd SelectBookingTime) error {
	workflow, err := h.workflow(cmd.UserID)
	if err != nil {
		return err
	}

	for _, slot := range aggregate.TimeSlots() {
		if slot == cmd.Time {
			return workflow.SelectTime(cmd.Time)
		}
	}
	return pkgerrors.NewValidationError("time is not an available slot")
}

// HandleSelectCustomTime resolves the free-form picker to the slot string
// representation and records it.
func (h *BookingHandlers) HandleSelectCustomTime(ctx context.Context, cmd SelectBookingCustomTime) error {
	workflow, err := h.workflow(cmd.UserID)
	if err != nil {
		return err
	}

	formatted, err := aggregate.FormatCustomTime(cmd.Hour, cmd.Minute, cmd.Period)
	if err != nil {
		return err
	}
	return workflow.SelectTime(formatted)
}

// HandleEnterDetails stores the detail fields without validating them
func (h *BookingHandlers) HandleEnterDetails(ctx context.Context, cmd EnterBookingDetails) error {
	workflow, err := h.workflow(cmd.UserID)
	if err != nil {
		return err
	}
	return workflow.EnterDetails(aggregate.AppointmentDetails{
		PetName: cmd.PetName,
		PetType: cmd.PetType,
		Reason:  cmd.Reason,
		Phone:   cmd.Phone,
		Notes:   cmd.Notes,
	})
}

// HandleBack moves the workflow one step back
func (h *BookingHandlers) HandleBack(ctx context.Context, userID string) error {
	workflow, err := h.workflow(userID)
	if err != nil {
		return err
	}
	workflow.Back()
	return nil
}

// HandleDismiss discards the in-progress form without persisting anything
func (h *BookingHandlers) HandleDismiss(ctx context.Context, userID string) {
	h.appState.EndBooking(userID)
}

// HandleSubmit validates the form, appends the confirmed appointment to the
// user's collection and persists it. On validation failure the workflow stays
// on the details step and no record is created.
func (h *BookingHandlers) HandleSubmit(ctx context.Context, cmd SubmitBooking) (*aggregate.Appointment, error) {
	workflow, err := h.workflow(cmd.UserID)
	if err != nil {
		return nil, err
	}

	appt, err := workflow.Submit(h.now())
	if err != nil {
		return nil, err
	}

	var appointments []aggregate.Appointment
	if _, err := h.store.Get(ctx, cmd.UserID, repository.KeyAppointments, &appointments); err != nil {
		return nil, err
	}
	appointments = append(appointments, *appt)

	if err := h.persistAppointments(ctx, cmd.UserID, appointments); err != nil {
		return nil, err
	}

	h.appState.EndBooking(cmd.UserID)

	ev := &event.AppointmentBooked{
		AppointmentID: appt.ID,
		UserID:        cmd.UserID,
		ClinicID:      appt.ClinicID,
		ClinicName:    appt.ClinicName,
		ServiceID:     appt.ServiceID,
		ServiceName:   appt.ServiceName,
		Date:          appt.Date,
		Time:          appt.Time,
		PetName:       appt.PetName,
		Timestamp:     h.now(),
	}
	if err := h.eventBus.Publish(ctx, ev); err != nil {
		logger.L().Warn("event publish failed", zap.String("event", ev.EventType()), zap.Error(err))
	}

	return appt, nil
}

// HandleCancelAppointment moves an appointment to cancelled. Cancelling an
// already-cancelled appointment is a no-op, not an error.
func (h *BookingHandlers) HandleCancelAppointment(ctx context.Context, cmd CancelAppointment) error {
	var appointments []aggregate.Appointment
	found, err := h.store.Get(ctx, cmd.UserID, repository.KeyAppointments, &appointments)
	if err != nil {
		return err
	}
	if !found {
		return pkgerrors.NewNotFoundError("appointment")
	}

	for i := range appointments {
		if appointments[i].ID != cmd.AppointmentID {
			continue
		}
		if !appointments[i].Cancel() {
			// already cancelled; terminal state, nothing to write
			return nil
		}
		if err := h.persistAppointments(ctx, cmd.UserID, appointments); err != nil {
			return err
		}

		ev := &event.AppointmentCancelled{
			AppointmentID: cmd.AppointmentID,
			UserID:        cmd.UserID,
			Timestamp:     h.now(),
		}
		if err := h.eventBus.Publish(ctx, ev); err != nil {
			logger.L().Warn("event publish failed", zap.String("event", ev.EventType()), zap.Error(err))
		}
		return nil
	}
	return pkgerrors.NewNotFoundError("appointment")
}

func (h *BookingHandlers) persistAppointments(ctx context.Context, userID string, appointments []aggregate.Appointment) error {
	err := h.store.Set(ctx, userID, repository.KeyAppointments, appointments)
	if err == nil {
		return nil
	}

	logger.L().Warn("appointments write failed, retrying", zap.String("user_id", userID), zap.Error(err))
	if err := h.store.Set(ctx, userID, repository.KeyAppointments, appointments); err != nil {
		logger.L().Error("appointments write failed after retry", zap.String("user_id", userID), zap.Error(err))
		return pkgerrors.NewPersistenceError("appointments could not be saved")
	}
	return nil
}

func (h *BookingHandlers) workflow(userID string) (*aggregate.BookingWorkflow, error) {
	workflow, ok := h.appState.Booking(userID)
	if !ok {
		return nil, pkgerrors.NewValidationError("no booking in progress")
	}
	return workflow, nil
}
