package aggregate

import (
	"github.com/google/uuid"

	pkgerrors "rifq-petcare/pkg/errors"
)

// Vaccination is one shot record, owned by its pet. Dates are calendar-date
// strings as entered by the user.
type Vaccination struct {
	Name    string `json:"name"`
	Date    string `json:"date"`
	NextDue string `json:"nextDue"`
}

// Pet is a registered animal. Age is free text ("٣ سنوات", "8 months"); the
// app never parses it. There is no delete path for pets.
type Pet struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Type         string        `json:"type"`
	Gender       string        `json:"gender"`
	Breed        string        `json:"breed"`
	Age          string        `json:"age"`
	Image        string        `json:"image"`
	Vaccinations []Vaccination `json:"vaccinations"`
}

// NewPet registers a pet. Name and type are required.
func NewPet(name, petType, gender, breed, age, image string) (*Pet, error) {
	if name == "" {
		return nil, pkgerrors.NewValidationError("pet name is required")
	}
	if petType == "" {
		return nil, pkgerrors.NewValidationError("pet type is required")
	}
	return &Pet{
		ID:           uuid.New().String(),
		Name:         name,
		Type:         petType,
		Gender:       gender,
		Breed:        breed,
		Age:          age,
		Image:        image,
		Vaccinations: []Vaccination{},
	}, nil
}

// Update replaces the editable profile fields. Empty name or type keeps the
// current value.
func (p *Pet) Update(name, petType, gender, breed, age string) {
	if name != "" {
		p.Name = name
	}
	if petType != "" {
		p.Type = petType
	}
	p.Gender = gender
	p.Breed = breed
	p.Age = age
}

// AddVaccination appends a shot record
func (p *Pet) AddVaccination(v Vaccination) error {
	if v.Name == "" {
		return pkgerrors.NewValidationError("vaccination name is required")
	}
	p.Vaccinations = append(p.Vaccinations, v)
	return nil
}

// RemoveVaccination deletes the record at the given position
func (p *Pet) RemoveVaccination(index int) error {
	if index < 0 || index >= len(p.Vaccinations) {
		return pkgerrors.NewValidationError("vaccination record not found")
	}
	p.Vaccinations = append(p.Vaccinations[:index], p.Vaccinations[index+1:]...)
	return nil
}
