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

// HTTPProfileController handles HTTP requests for the profile screen
type HTTPProfileController struct {
	profileService *services.ProfileService
}

// NewHTTPProfileController creates a new HTTP profile controller
func NewHTTPProfileController(profileService *services.ProfileService) *HTTPProfileController {
	return &HTTPProfileController{
		profileService: profileService,
	}
}

// GetStats handles GET /profile/stats
func (c *HTTPProfileController) GetStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.SendUnauthorized(w, r, "authentication required")
		return
	}

	stats, err := c.profileService.GetStats(r.Context(), userID)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, stats)
}

// ListPaymentMethods handles GET /profile/payment-methods
func (c *HTTPProfileController) ListPaymentMethods(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.SendUnauthorized(w, r, "authentication required")
		return
	}

	methods, err := c.profileService.ListPaymentMethods(r.Context(), userID)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, map[string]interface{}{
		"paymentMethods": methods,
	})
}

// AddPaymentMethod handles POST /profile/payment-methods
func (c *HTTPProfileController) AddPaymentMethod(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.SendUnauthorized(w, r, "authentication required")
		return
	}

	var cmd command.AddPaymentMethod
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		middleware.HandleError(w, r, errors.NewValidationError("invalid JSON format"))
		return
	}
	cmd.UserID = userID

	methods, err := c.profileService.AddPaymentMethod(r.Context(), cmd)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendCreated(w, r, map[string]interface{}{
		"paymentMethods": methods,
	})
}

// SetDefaultPaymentMethod handles PUT /profile/payment-methods/{id}/default
func (c *HTTPProfileController) SetDefaultPaymentMethod(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.SendUnauthorized(w, r, "authentication required")
		return
	}

	cmd := command.SetDefaultPaymentMethod{
		UserID:          userID,
		PaymentMethodID: chi.URLParam(r, "id"),
	}

	methods, err := c.profileService.SetDefaultPaymentMethod(r.Context(), cmd)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, map[string]interface{}{
		"paymentMethods": methods,
	})
}
