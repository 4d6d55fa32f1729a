package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"rifq-petcare/internal/application/command"
	"rifq-petcare/internal/application/services"
	"rifq-petcare/pkg/errors"
	"rifq-petcare/pkg/middleware"
	"rifq-petcare/pkg/response"
)

// HTTPBookingController handles HTTP requests for clinics and appointment
// booking
type HTTPBookingController struct {
	bookingService *services.BookingService
}

// NewHTTPBookingController creates a new HTTP booking controller
func NewHTTPBookingController(bookingService *services.BookingService) *HTTPBookingController {
	return &HTTPBookingController{
		bookingService: bookingService,
	}
}

// ListClinics handles GET /clinics
func (c *HTTPBookingController) ListClinics(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("q")
	clinics := c.bookingService.ListClinics(search)

	response.SendSuccess(w, r, map[string]interface{}{
		"clinics": clinics,
		"count":   len(clinics),
	})
}

// GetClinic handles GET /clinics/{id}
func (c *HTTPBookingController) GetClinic(w http.ResponseWriter, r *http.Request) {
	clinic, err := c.bookingService.GetClinic(chi.URLParam(r, "id"))
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, clinic)
}

// ListServices handles GET /services
func (c *HTTPBookingController) ListServices(w http.ResponseWriter, r *http.Request) {
	response.SendSuccess(w, r, map[string]interface{}{
		"services": c.bookingService.ListServices(),
	})
}

// GetBookingOptions handles GET /booking/options
func (c *HTTPBookingController) GetBookingOptions(w http.ResponseWriter, r *http.Request) {
	response.SendSuccess(w, r, c.bookingService.GetBookingOptions())
}

// StartBooking handles POST /booking
func (c *HTTPBookingController) StartBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.SendUnauthorized(w, r, "authentication required")
		return
	}

	var cmd command.StartBooking
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		middleware.HandleError(w, r, errors.NewValidationError("invalid JSON format"))
		return
	}
	cmd.UserID = userID

	if err := c.bookingService.Start(r.Context(), cmd); err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	c.sendBookingState(w, r, userID)
}

// GetBooking handles GET /booking
func (c *HTTPBookingController) GetBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.SendUnauthorized(w, r, "authentication required")
		return
	}

	c.sendBookingState(w, r, userID)
}

// SelectDate handles PUT /booking/date
func (c *HTTPBookingController) SelectDate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.SendUnauthorized(w, r, "authentication required")
		return
	}

	var cmd command.SelectBookingDate
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		middleware.HandleError(w, r, errors.NewValidationError("invalid JSON format"))
		return
	}
	cmd.UserID = userID

	if err := c.bookingService.SelectDate(r.Context(), cmd); err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	c.sendBookingState(w, r, userID)
}

// SelectTime handles PUT /booking/time
func (c *HTTPBookingController) SelectTime(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.SendUnauthorized(w, r, "authentication required")
		return
	}

	var cmd command.SelectBookingTime
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		middleware.HandleError(w, r, errors.NewValidationError("invalid JSON format"))
		return
	}
	cmd.UserID = userID

	if err := c.bookingService.SelectTime(r.Context(), cmd); err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	c.sendBookingState(w, r, userID)
}

// SelectCustomTime handles PUT /booking/custom-time
func (c *HTTPBookingController) SelectCustomTime(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.SendUnauthorized(w, r, "authentication required")
		return
	}

	var cmd command.SelectBookingCustomTime
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		middleware.HandleError(w, r, errors.NewValidationError("invalid JSON format"))
		return
	}
	cmd.UserID = userID

	if err := c.bookingService.SelectCustomTime(r.Context(), cmd); err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	c.sendBookingState(w, r, userID)
}

// EnterDetails handles PUT /booking/details
func (c *HTTPBookingController) EnterDetails(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.SendUnauthorized(w, r, "authentication required")
		return
	}

	var cmd command.EnterBookingDetails
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		middleware.HandleError(w, r, errors.NewValidationError("invalid JSON format"))
		return
	}
	cmd.UserID = userID

	if err := c.bookingService.EnterDetails(r.Context(), cmd); err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	c.sendBookingState(w, r, userID)
}

// Back handles POST /booking/back
func (c *HTTPBookingController) Back(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.SendUnauthorized(w, r, "authentication required")
		return
	}

	if err := c.bookingService.Back(r.Context(), userID); err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	c.sendBookingState(w, r, userID)
}

// Dismiss handles DELETE /booking
func (c *HTTPBookingController) Dismiss(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.SendUnauthorized(w, r, "authentication required")
		return
	}

	c.bookingService.Dismiss(r.Context(), userID)
	response.SendNoContent(w, r)
}

// Submit handles POST /booking/submit
func (c *HTTPBookingController) Submit(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.SendUnauthorized(w, r, "authentication required")
		return
	}

	appointment, err := c.bookingService.Submit(r.Context(), command.SubmitBooking{UserID: userID})
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendCreated(w, r, appointment)
}

// ListAppointments handles GET /appointments
func (c *HTTPBookingController) ListAppointments(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.SendUnauthorized(w, r, "authentication required")
		return
	}

	appointments, err := c.bookingService.ListAppointments(r.Context(), userID)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, map[string]interface{}{
		"appointments": appointments,
		"count":        len(appointments),
	})
}

// CancelAppointment handles POST /appointments/{id}/cancel
func (c *HTTPBookingController) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.SendUnauthorized(w, r, "authentication required")
		return
	}

	cmd := command.CancelAppointment{
		UserID:        userID,
		AppointmentID: chi.URLParam(r, "id"),
	}
	if err := c.bookingService.CancelAppointment(r.Context(), cmd); err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	appointments, err := c.bookingService.ListAppointments(r.Context(), userID)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, map[string]interface{}{
		"appointments": appointments,
	})
}

func (c *HTTPBookingController) sendBookingState(w http.ResponseWriter, r *http.Request, userID string) {
	view, err := c.bookingService.GetBooking(userID)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}
	response.SendSuccess(w, r, view)
}
