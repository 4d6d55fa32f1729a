package services

import (
	"context"
	"io"

	"rifq-petcare/internal/application/command"
	"rifq-petcare/internal/application/query"
	"rifq-petcare/internal/domain/aggregate"
	"rifq-petcare/internal/qr"
)

// PetService orchestrates the pet registry and QR profile sharing
type PetService struct {
	petHandlers *command.PetHandlers
	petQueries  *query.PetQueries
}

func NewPetService(petHandlers *command.PetHandlers, petQueries *query.PetQueries) *PetService {
	return &PetService{
		petHandlers: petHandlers,
		petQueries:  petQueries,
	}
}

// Command operations
func (s *PetService) AddPet(ctx context.Context, cmd command.AddPet) (*aggregate.Pet, error) {
	return s.petHandlers.HandleAddPet(ctx, cmd)
}

func (s *PetService) UpdatePet(ctx context.Context, cmd command.UpdatePet) (*aggregate.Pet, error) {
	return s.petHandlers.HandleUpdatePet(ctx, cmd)
}

func (s *PetService) AddVaccination(ctx context.Context, cmd command.AddVaccination) (*aggregate.Pet, error) {
	return s.petHandlers.HandleAddVaccination(ctx, cmd)
}

func (s *PetService) RemoveVaccination(ctx context.Context, cmd command.RemoveVaccination) (*aggregate.Pet, error) {
	return s.petHandlers.HandleRemoveVaccination(ctx, cmd)
}

func (s *PetService) UploadImage(ctx context.Context, userID, petID string, file io.Reader) (*aggregate.Pet, error) {
	return s.petHandlers.HandleUploadImage(ctx, userID, petID, file)
}

// Query operations
func (s *PetService) ListPets(ctx context.Context, userID string) ([]aggregate.Pet, error) {
	return s.petQueries.ListPets(ctx, userID)
}

func (s *PetService) GetPet(ctx context.Context, userID, petID string) (*aggregate.Pet, error) {
	return s.petQueries.GetPet(ctx, userID, petID)
}

func (s *PetService) GetPetQR(ctx context.Context, userID, petID string) (*query.PetQRView, error) {
	return s.petQueries.GetPetQR(ctx, userID, petID)
}

func (s *PetService) DecodePetQR(data string) (qr.Payload, error) {
	return s.petQueries.DecodePetQR(data)
}
