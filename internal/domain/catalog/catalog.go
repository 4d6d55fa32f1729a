// Package catalog holds the read-only reference data the app sells and books
// against: veterinary clinics, their services, and store products. The data is
// seeded, never user-mutated.
package catalog

import "strings"

// Clinic is a bookable veterinary clinic
type Clinic struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	Phone     string   `json:"phone"`
	Rating    float64  `json:"rating"`
	Image     string   `json:"image"`
	Services  []string `json:"services"`
	Distance  string   `json:"distance"`
	OpenHours string   `json:"openHours"`
}

// Service is a bookable clinic service
type Service struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Duration    int     `json:"duration"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// ProductCategory enumerates store product categories
type ProductCategory string

const (
	CategoryFood        ProductCategory = "food"
	CategoryAccessories ProductCategory = "accessories"
	CategoryToys        ProductCategory = "toys"
	CategoryHealth      ProductCategory = "health"
)

// PetType enumerates which animals a product applies to
type PetType string

const (
	PetTypeCat  PetType = "cat"
	PetTypeDog  PetType = "dog"
	PetTypeBoth PetType = "both"
)

// Product is a store item
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       float64         `json:"price"`
	Image       string          `json:"image"`
	Category    ProductCategory `json:"category"`
	PetType     PetType         `json:"petType"`
	Description string          `json:"description"`
	InStock     bool            `json:"inStock"`
}

// Catalog serves the seeded reference data
type Catalog struct {
	clinics  []Clinic
	services []Service
	products []Product
}

// New returns a catalog loaded with the seeded reference data
func New() *Catalog {
	return &Catalog{
		clinics:  seedClinics(),
		services: seedServices(),
		products: seedProducts(),
	}
}

// Clinics returns all clinics
func (c *Catalog) Clinics() []Clinic {
	out := make([]Clinic, len(c.clinics))
	copy(out, c.clinics)
	return out
}

// SearchClinics filters clinics by name or address
func (c *Catalog) SearchClinics(query string) []Clinic {
	if query == "" {
		return c.Clinics()
	}
	q := strings.ToLower(query)
	out := make([]Clinic, 0)
	for _, cl := range c.clinics {
		if strings.Contains(strings.ToLower(cl.Name), q) ||
			strings.Contains(strings.ToLower(cl.Address), q) {
			out = append(out, cl)
		}
	}
	return out
}

// ClinicByID looks up a clinic
func (c *Catalog) ClinicByID(id string) (Clinic, bool) {
	for _, cl := range c.clinics {
		if cl.ID == id {
			return cl, true
		}
	}
	return Clinic{}, false
}

// Services returns all bookable services
func (c *Catalog) Services() []Service {
	out := make([]Service, len(c.services))
	copy(out, c.services)
	return out
}

// ServiceByID looks up a service
func (c *Catalog) ServiceByID(id string) (Service, bool) {
	for _, s := range c.services {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}

// Products returns all products
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// ProductByID looks up a product
func (c *Catalog) ProductByID(id string) (Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// ProductFilter narrows the product listing. Zero values mean "all".
type ProductFilter struct {
	Category ProductCategory
	PetType  PetType
	Query    string
}

// FilterProducts returns products matching the filter. A product tagged
// "both" matches either pet type.
func (c *Catalog) FilterProducts(f ProductFilter) []Product {
	q := strings.ToLower(f.Query)
	out := make([]Product, 0)
	for _, p := range c.products {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.PetType != "" && p.PetType != f.PetType && p.PetType != PetTypeBoth {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			continue
		}
		out = append(out, p)
	}
	return out
}
