package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"rifq-petcare/internal/application/command"
	"rifq-petcare/internal/application/services"
	"rifq-petcare/internal/domain/catalog"
	"rifq-petcare/pkg/middleware"
	"rifq-petcare/pkg/response"

	pkgerrors "rifq-petcare/pkg/errors"
)

// HTTPStoreController handles HTTP requests for the pet store: products,
// the cart, checkout, and order history
type HTTPStoreController struct {
	storeService *services.StoreService
}

// NewHTTPStoreController creates a new HTTP store controller
func NewHTTPStoreController(storeService *services.StoreService) *HTTPStoreController {
	return &HTTPStoreController{
		storeService: storeService,
	}
}

// ListProducts handles GET /products
func (c *HTTPStoreController) ListProducts(w http.ResponseWriter, r *http.Request) {
	filter := catalog.ProductFilter{
		Category: catalog.ProductCategory(r.URL.Query().Get("category")),
		PetType:  catalog.PetType(r.URL.Query().Get("petType")),
		Query:    r.URL.Query().Get("q"),
	}

	products := c.storeService.ListProducts(filter)
	response.SendSuccess(w, r, map[string]interface{}{
		"products": products,
		"count":    len(products),
	})
}

// GetProduct handles GET /products/{id}
func (c *HTTPStoreController) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := c.storeService.GetProduct(chi.URLParam(r, "id"))
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, product)
}

// GetCart handles GET /cart
func (c *HTTPStoreController) GetCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.SendUnauthorized(w, r, "authentication required")
		return
	}

	cart, err := c.storeService.GetCart(r.Context(), userID)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, cart)
}

// AddToCart handles POST /cart/items
func (c *HTTPStoreController) AddToCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.SendUnauthorized(w, r, "authentication required")
		return
	}

	var cmd command.AddToCart
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		middleware.HandleError(w, r, pkgerrors.NewValidationError("invalid JSON format"))
		return
	}
	cmd.UserID = userID

	err := c.storeService.AddToCart(r.Context(), cmd)
	c.sendCartState(w, r, userID, err)
}

// SetCartQuantity handles PUT /cart/items/{productId}
func (c *HTTPStoreController) SetCartQuantity(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.SendUnauthorized(w, r, "authentication required")
		return
	}

	var cmd command.SetCartQuantity
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		middleware.HandleError(w, r, pkgerrors.NewValidationError("invalid JSON format"))
		return
	}
	cmd.UserID = userID
	cmd.ProductID = chi.URLParam(r, "productId")

	err := c.storeService.SetCartQuantity(r.Context(), cmd)
	c.sendCartState(w, r, userID, err)
}

// Checkout handles POST /checkout
func (c *HTTPStoreController) Checkout(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.SendUnauthorized(w, r, "authentication required")
		return
	}

	var cmd command.Checkout
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		middleware.HandleError(w, r, pkgerrors.NewValidationError("invalid JSON format"))
		return
	}
	cmd.UserID = userID

	order, err := c.storeService.Checkout(r.Context(), cmd)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendCreated(w, r, order)
}

// ListOrders handles GET /orders
func (c *HTTPStoreController) ListOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.SendUnauthorized(w, r, "authentication required")
		return
	}

	orders, err := c.storeService.ListOrders(r.Context(), userID)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, map[string]interface{}{
		"orders": orders,
		"count":  len(orders),
	})
}

// sendCartState returns the live cart after a mutation. A persistence
// failure does not lose the in-memory change, so it is reported as a
// warning alongside the updated cart rather than as a failed request.
func (c *HTTPStoreController) sendCartState(w http.ResponseWriter, r *http.Request, userID string, mutationErr error) {
	var warning string
	if mutationErr != nil {
		var appErr *pkgerrors.ApplicationError
		if errors.As(mutationErr, &appErr) && appErr.Code == "PERSISTENCE_ERROR" {
			warning = appErr.Message
		} else {
			middleware.HandleError(w, r, mutationErr)
			return
		}
	}

	cart, err := c.storeService.GetCart(r.Context(), userID)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	if warning != "" {
		response.SendSuccessWithWarning(w, r, cart, warning)
		return
	}
	response.SendSuccess(w, r, cart)
}
