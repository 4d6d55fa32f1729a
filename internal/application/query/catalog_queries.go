package query

import (
	"time"

	"rifq-petcare/internal/domain/aggregate"
	"rifq-petcare/internal/domain/catalog"

	pkgerrors "rifq-petcare/pkg/errors"
)

// CatalogQueries serves the seeded reference data: clinics, services,
// products, and the booking date/time options.
type CatalogQueries struct {
	catalog *catalog.Catalog
	now     func() time.Time
}

// NewCatalogQueries creates the catalog read side
func NewCatalogQueries(cat *catalog.Catalog) *CatalogQueries {
	return &CatalogQueries{
		catalog: cat,
		now:     time.Now,
	}
}

// ListClinics returns clinics, filtered by a name/address search when query
// is non-empty
func (q *CatalogQueries) ListClinics(search string) []catalog.Clinic {
	if search == "" {
		return q.catalog.Clinics()
	}
	return q.catalog.SearchClinics(search)
}

// GetClinic returns a clinic by id
func (q *CatalogQueries) GetClinic(id string) (catalog.Clinic, error) {
	clinic, ok := q.catalog.ClinicByID(id)
	if !ok {
		return catalog.Clinic{}, pkgerrors.NewNotFoundError("clinic")
	}
	return clinic, nil
}

// ListServices returns all bookable services
func (q *CatalogQueries) ListServices() []catalog.Service {
	return q.catalog.Services()
}

// ListProducts returns products matching the filter
func (q *CatalogQueries) ListProducts(f catalog.ProductFilter) []catalog.Product {
	return q.catalog.FilterProducts(f)
}

// GetProduct returns a product by id
func (q *CatalogQueries) GetProduct(id string) (catalog.Product, error) {
	product, ok := q.catalog.ProductByID(id)
	if !ok {
		return catalog.Product{}, pkgerrors.NewNotFoundError("product")
	}
	return product, nil
}

// BookingOptions are the selectable dates and times for the booking dialog
type BookingOptions struct {
	Dates     []aggregate.DateOption `json:"dates"`
	TimeSlots []string               `json:"timeSlots"`
}

// GetBookingOptions returns the next 30 days and the fixed half-hour slots
func (q *CatalogQueries) GetBookingOptions() BookingOptions {
	return BookingOptions{
		Dates:     aggregate.AvailableDates(q.now()),
		TimeSlots: aggregate.TimeSlots(),
	}
}
