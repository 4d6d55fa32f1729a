package http

import (
	"encoding/json"
	"net/http"

	"rifq-petcare/internal/application/command"
	"rifq-petcare/internal/application/services"
	"rifq-petcare/pkg/errors"
	"rifq-petcare/pkg/middleware"
	"rifq-petcare/pkg/response"
)

// HTTPAuthController handles HTTP requests for account operations
type HTTPAuthController struct {
	authService *services.AuthService
}

// NewHTTPAuthController creates a new HTTP auth controller
func NewHTTPAuthController(authService *services.AuthService) *HTTPAuthController {
	return &HTTPAuthController{
		authService: authService,
	}
}

// SignUp handles POST /auth/signup
func (c *HTTPAuthController) SignUp(w http.ResponseWriter, r *http.Request) {
	var cmd command.SignUp
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		middleware.HandleError(w, r, errors.NewValidationError("invalid JSON format"))
		return
	}

	result, err := c.authService.SignUp(r.Context(), cmd)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendCreated(w, r, result)
}

// Login handles POST /auth/login
func (c *HTTPAuthController) Login(w http.ResponseWriter, r *http.Request) {
	var cmd command.Login
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		middleware.HandleError(w, r, errors.NewValidationError("invalid JSON format"))
		return
	}

	result, err := c.authService.Login(r.Context(), cmd)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, result)
}

// UpdateProfile handles PUT /profile
func (c *HTTPAuthController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.SendUnauthorized(w, r, "authentication required")
		return
	}

	var cmd command.UpdateProfile
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		middleware.HandleError(w, r, errors.NewValidationError("invalid JSON format"))
		return
	}
	cmd.UserID = userID

	user, err := c.authService.UpdateProfile(r.Context(), cmd)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, user)
}
