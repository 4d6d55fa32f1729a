package command

import (
	"context"
	"testing"
	"time"

	"rifq-petcare/internal/domain/aggregate"
	"rifq-petcare/internal/domain/repository"
)

func startBooking(t *testing.T, env *testEnv, h *BookingHandlers, userID string) {
	t.Helper()
	err := h.HandleStart(context.Background(), StartBooking{UserID: userID, ClinicID: "1", ServiceID: "2"})
	if err != nil {
		t.Fatalf("HandleStart: %v", err)
	}
}

func TestBookingSubmitPersistsAppointment(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	h := NewBookingHandlers(env.appState, env.store, env.eventBus, env.catalog)
	h.now = func() time.Time { return time.UnixMilli(1741600000000) }

	startBooking(t, env, h, "user-1")

	if err := h.HandleSelectDate(ctx, SelectBookingDate{UserID: "user-1", Date: "2025-03-10"}); err != nil {
		t.Fatalf("HandleSelectDate: %v", err)
	}
	if err := h.HandleSelectTime(ctx, SelectBookingTime{UserID: "user-1", Time: "10:30 ص"}); err != nil {
		t.Fatalf("HandleSelectTime: %v", err)
	}
	if err := h.HandleEnterDetails(ctx, EnterBookingDetails{
		UserID: "user-1", PetName: "بادي", PetType: "كلب", Reason: "تطعيم",
	}); err != nil {
		t.Fatalf("HandleEnterDetails: %v", err)
	}

	appt, err := h.HandleSubmit(ctx, SubmitBooking{UserID: "user-1"})
	if err != nil {
		t.Fatalf("HandleSubmit: %v", err)
	}
	if appt.ID != "1741600000000" || appt.Status != aggregate.AppointmentStatusConfirmed {
		t.Errorf("unexpected appointment: %+v", appt)
	}

	var appointments []aggregate.Appointment
	if _, err := env.store.Get(ctx, "user-1", repository.KeyAppointments, &appointments); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(appointments) != 1 || appointments[0].ID != appt.ID {
		t.Errorf("appointment not persisted: %+v", appointments)
	}

	// Workflow discarded after submit
	if _, ok := env.appState.Booking("user-1"); ok {
		t.Error("workflow should be gone after submit")
	}
}

func TestBookingRejectsTimeOutsideSlots(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	h := NewBookingHandlers(env.appState, env.store, env.eventBus, env.catalog)
	startBooking(t, env, h, "user-1")

	if err := h.HandleSelectDate(ctx, SelectBookingDate{UserID: "user-1", Date: "2025-03-10"}); err != nil {
		t.Fatalf("HandleSelectDate: %v", err)
	}
	if err := h.HandleSelectTime(ctx, SelectBookingTime{UserID: "user-1", Time: "08:00 ص"}); err == nil {
		t.Error("expected error for a time outside the slot list")
	}
}

func TestBookingCustomTimeMatchesSlotForm(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	h := NewBookingHandlers(env.appState, env.store, env.eventBus, env.catalog)
	startBooking(t, env, h, "user-1")

	h.HandleSelectDate(ctx, SelectBookingDate{UserID: "user-1", Date: "2025-03-10"})
	if err := h.HandleSelectCustomTime(ctx, SelectBookingCustomTime{
		UserID: "user-1", Hour: 9, Minute: 0, Period: aggregate.PeriodAM,
	}); err != nil {
		t.Fatalf("HandleSelectCustomTime: %v", err)
	}

	w, _ := env.appState.Booking("user-1")
	if w.SelectedTime() != "09:00 ص" {
		t.Errorf("custom pick should resolve to the slot string, got %q", w.SelectedTime())
	}
}

func TestBookingFailedSubmitKeepsWorkflow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	h := NewBookingHandlers(env.appState, env.store, env.eventBus, env.catalog)
	startBooking(t, env, h, "user-1")

	h.HandleSelectDate(ctx, SelectBookingDate{UserID: "user-1", Date: "2025-03-10"})
	h.HandleSelectTime(ctx, SelectBookingTime{UserID: "user-1", Time: "09:00 ص"})
	h.HandleEnterDetails(ctx, EnterBookingDetails{UserID: "user-1", PetType: "كلب", Reason: "فحص"})

	if _, err := h.HandleSubmit(ctx, SubmitBooking{UserID: "user-1"}); err == nil {
		t.Fatal("expected validation error for missing pet name")
	}

	// Still on the details step with input intact; nothing persisted
	w, ok := env.appState.Booking("user-1")
	if !ok {
		t.Fatal("workflow discarded by failed submit")
	}
	if w.Step() != aggregate.StepEnteringDetails {
		t.Errorf("expected entering_details, got %s", w.Step())
	}

	var appointments []aggregate.Appointment
	found, err := env.store.Get(ctx, "user-1", repository.KeyAppointments, &appointments)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if found {
		t.Errorf("appointment written despite failed submit: %+v", appointments)
	}
}

func TestCancelAppointmentIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	h := NewBookingHandlers(env.appState, env.store, env.eventBus, env.catalog)

	seed := []aggregate.Appointment{{ID: "100", Status: aggregate.AppointmentStatusConfirmed}}
	if err := env.store.Set(ctx, "user-1", repository.KeyAppointments, seed); err != nil {
		t.Fatalf("Set: %v", err)
	}

	cmd := CancelAppointment{UserID: "user-1", AppointmentID: "100"}
	if err := h.HandleCancelAppointment(ctx, cmd); err != nil {
		t.Fatalf("HandleCancelAppointment: %v", err)
	}
	// Second cancel is a no-op
	if err := h.HandleCancelAppointment(ctx, cmd); err != nil {
		t.Fatalf("second cancel: %v", err)
	}

	var appointments []aggregate.Appointment
	if _, err := env.store.Get(ctx, "user-1", repository.KeyAppointments, &appointments); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if appointments[0].Status != aggregate.AppointmentStatusCancelled {
		t.Errorf("expected cancelled, got %q", appointments[0].Status)
	}
}

func TestCancelUnknownAppointment(t *testing.T) {
	env := newTestEnv(t)
	h := NewBookingHandlers(env.appState, env.store, env.eventBus, env.catalog)

	err := h.HandleCancelAppointment(context.Background(), CancelAppointment{UserID: "user-1", AppointmentID: "missing"})
	if err == nil {
		t.Error("expected error for unknown appointment")
	}
}
