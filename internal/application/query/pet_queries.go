package query

import (
	"context"
	"time"

	"rifq-petcare/internal/domain/aggregate"
	"rifq-petcare/internal/domain/repository"
	"rifq-petcare/internal/qr"

	pkgerrors "rifq-petcare/pkg/errors"
)

const qrImageSize = 256

// PetQRView is a pet's shareable QR code plus the payload it encodes
type PetQRView struct {
	PetID   string     `json:"petId"`
	Image   string     `json:"image"`
	Payload qr.Payload `json:"payload"`
}

// PetQueries serves the pet registry read side, including QR generation
// and decoding of scanned codes.
type PetQueries struct {
	store repository.StoreGateway
	now   func() time.Time
}

// NewPetQueries creates the pet read side
func NewPetQueries(store repository.StoreGateway) *PetQueries {
	return &PetQueries{
		store: store,
		now:   time.Now,
	}
}

// ListPets returns the user's registered pets
func (q *PetQueries) ListPets(ctx context.Context, userID string) ([]aggregate.Pet, error) {
	var pets []aggregate.Pet
	if _, err := q.store.Get(ctx, userID, repository.KeyPets, &pets); err != nil {
		return nil, err
	}
	if pets == nil {
		pets = []aggregate.Pet{}
	}
	return pets, nil
}

// GetPet returns one of the user's pets by id
func (q *PetQueries) GetPet(ctx context.Context, userID, petID string) (*aggregate.Pet, error) {
	pets, err := q.ListPets(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range pets {
		if pets[i].ID == petID {
			return &pets[i], nil
		}
	}
	return nil, pkgerrors.NewNotFoundError("pet")
}

// GetPetQR renders a pet's profile as a QR code data URL
func (q *PetQueries) GetPetQR(ctx context.Context, userID, petID string) (*PetQRView, error) {
	pet, err := q.GetPet(ctx, userID, petID)
	if err != nil {
		return nil, err
	}

	payload := qr.NewPayload(pet, q.now())
	image, err := qr.EncodeDataURL(payload, qrImageSize)
	if err != nil {
		return nil, err
	}
	return &PetQRView{
		PetID:   pet.ID,
		Image:   image,
		Payload: payload,
	}, nil
}

// DecodePetQR parses a scanned QR payload back into pet data
func (q *PetQueries) DecodePetQR(data string) (qr.Payload, error) {
	return qr.Decode(data)
}
