package aggregate

import (
	"fmt"
	"strconv"
	"time"

	"rifq-petcare/internal/domain/catalog"

	pkgerrors "rifq-petcare/pkg/errors"
)

// BookingStep enumerates the stages of the booking workflow
type BookingStep int

const (
	StepSelectingDate BookingStep = iota + 1
	StepSelectingTime
	StepEnteringDetails
)

func (s BookingStep) String() string {
	switch s {
	case StepSelectingDate:
		return "selecting_date"
	case StepSelectingTime:
		return "selecting_time"
	case StepEnteringDetails:
		return "entering_details"
	default:
		return "unknown"
	}
}

// PetTypeLabels is the fixed set of pet categories offered on the details step
var PetTypeLabels = []string{"كلب", "قطة", "أخرى"}

// AppointmentDetails are the fields collected on the final booking step.
// Phone and Notes are optional.
type AppointmentDetails struct {
	PetName string `json:"petName"`
	PetType string `json:"petType"`
	Reason  string `json:"reason"`
	Phone   string `json:"phone,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

// BookingWorkflow is the linear date → time → details form for booking one
// appointment at a clinic. Steps advance one at a time; going back one step
// or re-selecting an earlier value keeps anything already entered later.
type BookingWorkflow struct {
	clinic  catalog.Clinic
	service catalog.Service
	step    BookingStep
	date    string
	time    string
	details AppointmentDetails
}

// NewBookingWorkflow starts a workflow for the given clinic and service
func NewBookingWorkflow(clinic catalog.Clinic, service catalog.Service) (*BookingWorkflow, error) {
	if clinic.ID == "" {
		return nil, fmt.Errorf("clinic id cannot be empty")
	}
	if service.ID == "" {
		return nil, fmt.Errorf("service id cannot be empty")
	}
	return &BookingWorkflow{
		clinic:  clinic,
		service: service,
		step:    StepSelectingDate,
	}, nil
}

// Step returns the current workflow step
func (w *BookingWorkflow) Step() BookingStep { return w.step }

// Clinic returns the clinic being booked
func (w *BookingWorkflow) Clinic() catalog.Clinic { return w.clinic }

// Service returns the service being booked
func (w *BookingWorkflow) Service() catalog.Service { return w.service }

// SelectedDate returns the chosen date, if any
func (w *BookingWorkflow) SelectedDate() string { return w.date }

// SelectedTime returns the chosen time, if any
func (w *BookingWorkflow) SelectedTime() string { return w.time }

// Details returns the detail fields entered so far
func (w *BookingWorkflow) Details() AppointmentDetails { return w.details }

// SelectDate records the chosen date and moves to time selection. Re-selecting
// from a later step overwrites the date but keeps the chosen time and details.
func (w *BookingWorkflow) SelectDate(date string) error {
	if date == "" {
		return pkgerrors.NewValidationError("date is required")
	}
	w.date = date
	w.step = StepSelectingTime
	return nil
}

// SelectTime records the chosen time and moves to the details step. A date
// must already be selected; skipping ahead is not allowed.
func (w *BookingWorkflow) SelectTime(t string) error {
	if w.step < StepSelectingTime {
		return pkgerrors.NewValidationError("select a date first")
	}
	if t == "" {
		return pkgerrors.NewValidationError("time is required")
	}
	w.time = t
	w.step = StepEnteringDetails
	return nil
}

// EnterDetails stores the detail fields without validating them; validation
// happens on Submit so partially-typed input survives step navigation.
func (w *BookingWorkflow) EnterDetails(d AppointmentDetails) error {
	if w.step != StepEnteringDetails {
		return pkgerrors.NewValidationError("select a date and time first")
	}
	w.details = d
	return nil
}

// Back moves one step towards date selection. At the first step it is a no-op.
// Entered values are kept.
func (w *BookingWorkflow) Back() {
	if w.step > StepSelectingDate {
		w.step--
	}
}

// Submit validates the collected fields and produces a confirmed appointment,
// then resets the workflow to its initial state. On validation failure the
// workflow stays on the details step and nothing is created.
func (w *BookingWorkflow) Submit(now time.Time) (*Appointment, error) {
	if w.step != StepEnteringDetails {
		return nil, pkgerrors.NewValidationError("booking is not complete")
	}
	if w.details.PetName == "" || w.details.PetType == "" || w.details.Reason == "" {
		return nil, pkgerrors.NewValidationError("يرجى ملء جميع الحقول المطلوبة")
	}
	if !validPetType(w.details.PetType) {
		return nil, pkgerrors.NewValidationError("نوع الحيوان غير صالح")
	}

	appt := &Appointment{
		ID:          strconv.FormatInt(now.UnixMilli(), 10),
		ClinicID:    w.clinic.ID,
		ClinicName:  w.clinic.Name,
		ServiceID:   w.service.ID,
		ServiceName: w.service.Name,
		Date:        w.date,
		Time:        w.time,
		PetName:     w.details.PetName,
		Status:      AppointmentStatusConfirmed,
	}

	w.reset()
	return appt, nil
}

// Reset discards all in-progress selections, e.g. when the booking dialog is
// dismissed mid-flow.
func (w *BookingWorkflow) Reset() {
	w.reset()
}

func (w *BookingWorkflow) reset() {
	w.step = StepSelectingDate
	w.date = ""
	w.time = ""
	w.details = AppointmentDetails{}
}

func validPetType(t string) bool {
	for _, l := range PetTypeLabels {
		if t == l {
			return true
		}
	}
	return false
}
