package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"rifq-petcare/pkg/middleware"

	jwtutil "rifq-petcare/pkg/jwt"
)

// RouterConfig carries the controllers and cross-cutting settings the
// router mounts
type RouterConfig struct {
	Auth    *HTTPAuthController
	Booking *HTTPBookingController
	Store   *HTTPStoreController
	Pet     *HTTPPetController
	Profile *HTTPProfileController

	JWTManager     *jwtutil.JWTManager
	RequestTimeout time.Duration
	RateLimit      int
	RateWindow     time.Duration
}

// NewRouter mounts all API routes. Catalog browsing and QR decoding are
// public; everything touching per-user state requires a token.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.ErrorHandler)
	if cfg.RequestTimeout > 0 {
		r.Use(middleware.TimeoutMiddleware(cfg.RequestTimeout))
	}
	if cfg.RateLimit > 0 {
		r.Use(middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow).Middleware)
	}

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy","service":"rifq-petcare"}`))
	})

	// Public routes
	r.Post("/auth/signup", cfg.Auth.SignUp)
	r.Post("/auth/login", cfg.Auth.Login)

	r.Get("/clinics", cfg.Booking.ListClinics)
	r.Get("/clinics/{id}", cfg.Booking.GetClinic)
	r.Get("/services", cfg.Booking.ListServices)
	r.Get("/booking/options", cfg.Booking.GetBookingOptions)

	r.Get("/products", cfg.Store.ListProducts)
	r.Get("/products/{id}", cfg.Store.GetProduct)

	r.Post("/pets/qr/decode", cfg.Pet.DecodePetQR)

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuthMiddleware(cfg.JWTManager))

		r.Put("/profile", cfg.Auth.UpdateProfile)
		r.Get("/profile/stats", cfg.Profile.GetStats)
		r.Get("/profile/payment-methods", cfg.Profile.ListPaymentMethods)
		r.Post("/profile/payment-methods", cfg.Profile.AddPaymentMethod)
		r.Put("/profile/payment-methods/{id}/default", cfg.Profile.SetDefaultPaymentMethod)

		r.Post("/booking", cfg.Booking.StartBooking)
		r.Get("/booking", cfg.Booking.GetBooking)
		r.Delete("/booking", cfg.Booking.Dismiss)
		r.Put("/booking/date", cfg.Booking.SelectDate)
		r.Put("/booking/time", cfg.Booking.SelectTime)
		r.Put("/booking/custom-time", cfg.Booking.SelectCustomTime)
		r.Put("/booking/details", cfg.Booking.EnterDetails)
		r.Post("/booking/back", cfg.Booking.Back)
		r.Post("/booking/submit", cfg.Booking.Submit)

		r.Get("/appointments", cfg.Booking.ListAppointments)
		r.Post("/appointments/{id}/cancel", cfg.Booking.CancelAppointment)

		r.Get("/cart", cfg.Store.GetCart)
		r.Post("/cart/items", cfg.Store.AddToCart)
		r.Put("/cart/items/{productId}", cfg.Store.SetCartQuantity)
		r.Post("/checkout", cfg.Store.Checkout)
		r.Get("/orders", cfg.Store.ListOrders)

		r.Get("/pets", cfg.Pet.ListPets)
		r.Post("/pets", cfg.Pet.AddPet)
		r.Get("/pets/{id}", cfg.Pet.GetPet)
		r.Put("/pets/{id}", cfg.Pet.UpdatePet)
		r.Post("/pets/{id}/vaccinations", cfg.Pet.AddVaccination)
		r.Delete("/pets/{id}/vaccinations/{index}", cfg.Pet.RemoveVaccination)
		r.Post("/pets/{id}/image", cfg.Pet.UploadImage)
		r.Get("/pets/{id}/qr", cfg.Pet.GetPetQR)
	})

	return r
}
