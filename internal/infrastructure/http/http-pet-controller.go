package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"rifq-petcare/internal/application/command"
	"rifq-petcare/internal/application/services"
	"rifq-petcare/pkg/errors"
	"rifq-petcare/pkg/middleware"
	"rifq-petcare/pkg/response"
)

const maxImageUploadSize = 10 << 20

// HTTPPetController handles HTTP requests for the pet registry
type HTTPPetController struct {
	petService *services.PetService
}

// NewHTTPPetController creates a new HTTP pet controller
func NewHTTPPetController(petService *services.PetService) *HTTPPetController {
	return &HTTPPetController{
		petService: petService,
	}
}

// ListPets handles GET /pets
func (c *HTTPPetController) ListPets(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.SendUnauthorized(w, r, "authentication required")
		return
	}

	pets, err := c.petService.ListPets(r.Context(), userID)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, map[string]interface{}{
		"pets":  pets,
		"count": len(pets),
	})
}

// GetPet handles GET /pets/{id}
func (c *HTTPPetController) GetPet(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.SendUnauthorized(w, r, "authentication required")
		return
	}

	pet, err := c.petService.GetPet(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, pet)
}

// AddPet handles POST /pets
func (c *HTTPPetController) AddPet(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.SendUnauthorized(w, r, "authentication required")
		return
	}

	var cmd command.AddPet
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		middleware.HandleError(w, r, errors.NewValidationError("invalid JSON format"))
		return
	}
	cmd.UserID = userID

	pet, err := c.petService.AddPet(r.Context(), cmd)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendCreated(w, r, pet)
}

// UpdatePet handles PUT /pets/{id}
func (c *HTTPPetController) UpdatePet(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.SendUnauthorized(w, r, "authentication required")
		return
	}

	var cmd command.UpdatePet
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		middleware.HandleError(w, r, errors.NewValidationError("invalid JSON format"))
		return
	}
	cmd.UserID = userID
	cmd.PetID = chi.URLParam(r, "id")

	pet, err := c.petService.UpdatePet(r.Context(), cmd)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, pet)
}

// AddVaccination handles POST /pets/{id}/vaccinations
func (c *HTTPPetController) AddVaccination(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.SendUnauthorized(w, r, "authentication required")
		return
	}

	var cmd command.AddVaccination
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		middleware.HandleError(w, r, errors.NewValidationError("invalid JSON format"))
		return
	}
	cmd.UserID = userID
	cmd.PetID = chi.URLParam(r, "id")

	pet, err := c.petService.AddVaccination(r.Context(), cmd)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, pet)
}

// RemoveVaccination handles DELETE /pets/{id}/vaccinations/{index}
func (c *HTTPPetController) RemoveVaccination(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.SendUnauthorized(w, r, "authentication required")
		return
	}

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		middleware.HandleError(w, r, errors.NewValidationError("invalid vaccination index"))
		return
	}

	cmd := command.RemoveVaccination{
		UserID: userID,
		PetID:  chi.URLParam(r, "id"),
		Index:  index,
	}

	pet, err := c.petService.RemoveVaccination(r.Context(), cmd)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, pet)
}

// UploadImage handles POST /pets/{id}/image
func (c *HTTPPetController) UploadImage(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.SendUnauthorized(w, r, "authentication required")
		return
	}

	if err := r.ParseMultipartForm(maxImageUploadSize); err != nil {
		middleware.HandleError(w, r, errors.NewValidationError("invalid multipart form"))
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		middleware.HandleError(w, r, errors.NewValidationError("image file is required"))
		return
	}
	defer file.Close()

	pet, err := c.petService.UploadImage(r.Context(), userID, chi.URLParam(r, "id"), file)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, pet)
}

// GetPetQR handles GET /pets/{id}/qr
func (c *HTTPPetController) GetPetQR(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.SendUnauthorized(w, r, "authentication required")
		return
	}

	view, err := c.petService.GetPetQR(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, view)
}

// DecodePetQR handles POST /pets/qr/decode
func (c *HTTPPetController) DecodePetQR(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Data string `json:"data"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.HandleError(w, r, errors.NewValidationError("invalid JSON format"))
		return
	}

	payload, err := c.petService.DecodePetQR(req.Data)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, payload)
}
