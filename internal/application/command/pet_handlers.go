package command

import (
	"context"
	"io"
	"time"

	"go.uber.org/zap"

	"rifq-petcare/internal/domain/aggregate"
	"rifq-petcare/internal/domain/event"
	"rifq-petcare/internal/domain/repository"
	"rifq-petcare/internal/infrastructure/bus"
	"rifq-petcare/internal/infrastructure/cloudinary"
	"rifq-petcare/pkg/logger"

	pkgerrors "rifq-petcare/pkg/errors"
)

// PetHandlers manages the pet registry. Pets are only ever added and edited;
// there is no delete path.
type PetHandlers struct {
	store    repository.StoreGateway
	eventBus bus.EventBus
	images   *cloudinary.Service
}

// NewPetHandlers creates the pet command handlers. The image service may be
// nil when no Cloudinary credentials are configured.
func NewPetHandlers(store repository.StoreGateway, eventBus bus.EventBus, images *cloudinary.Service) *PetHandlers {
	return &PetHandlers{
		store:    store,
		eventBus: eventBus,
		images:   images,
	}
}

// HandleAddPet registers a new pet
func (h *PetHandlers) HandleAddPet(ctx context.Context, cmd AddPet) (*aggregate.Pet, error) {
	pet, err := aggregate.NewPet(cmd.Name, cmd.Type, cmd.Gender, cmd.Breed, cmd.Age, cmd.Image)
	if err != nil {
		return nil, err
	}

	pets, err := h.loadPets(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}
	pets = append(pets, *pet)

	if err := h.store.Set(ctx, cmd.UserID, repository.KeyPets, pets); err != nil {
		return nil, pkgerrors.NewPersistenceError("pets could not be saved")
	}

	ev := &event.PetRegistered{
		PetID:     pet.ID,
		UserID:    cmd.UserID,
		Name:      pet.Name,
		Type:      pet.Type,
		Breed:     pet.Breed,
		Timestamp: time.Now(),
	}
	if err := h.eventBus.Publish(ctx, ev); err != nil {
		logger.L().Warn("event publish failed", zap.String("event", ev.EventType()), zap.Error(err))
	}

	return pet, nil
}

// HandleUpdatePet edits a pet's profile fields
func (h *PetHandlers) HandleUpdatePet(ctx context.Context, cmd UpdatePet) (*aggregate.Pet, error) {
	return h.mutatePet(ctx, cmd.UserID, cmd.PetID, func(pet *aggregate.Pet) error {
		pet.Update(cmd.Name, cmd.Type, cmd.Gender, cmd.Breed, cmd.Age)
		return nil
	})
}

// HandleAddVaccination appends a shot record to a pet
func (h *PetHandlers) HandleAddVaccination(ctx context.Context, cmd AddVaccination) (*aggregate.Pet, error) {
	return h.mutatePet(ctx, cmd.UserID, cmd.PetID, func(pet *aggregate.Pet) error {
		return pet.AddVaccination(cmd.Vaccination)
	})
}

// HandleRemoveVaccination removes a shot record from a pet
func (h *PetHandlers) HandleRemoveVaccination(ctx context.Context, cmd RemoveVaccination) (*aggregate.Pet, error) {
	return h.mutatePet(ctx, cmd.UserID, cmd.PetID, func(pet *aggregate.Pet) error {
		return pet.RemoveVaccination(cmd.Index)
	})
}

// HandleUploadImage stores a pet photo and records its hosted URL
func (h *PetHandlers) HandleUploadImage(ctx context.Context, userID, petID string, file io.Reader) (*aggregate.Pet, error) {
	if h.images == nil {
		return nil, pkgerrors.NewInternalError("image uploads are not configured")
	}

	url, err := h.images.UploadPetImage(ctx, petID, file)
	if err != nil {
		return nil, pkgerrors.NewInternalError("image upload failed")
	}

	return h.mutatePet(ctx, userID, petID, func(pet *aggregate.Pet) error {
		pet.Image = url
		return nil
	})
}

func (h *PetHandlers) mutatePet(ctx context.Context, userID, petID string, mutate func(*aggregate.Pet) error) (*aggregate.Pet, error) {
	pets, err := h.loadPets(ctx, userID)
	if err != nil {
		return nil, err
	}

	for i := range pets {
		if pets[i].ID != petID {
			continue
		}
		if err := mutate(&pets[i]); err != nil {
			return nil, err
		}
		if err := h.store.Set(ctx, userID, repository.KeyPets, pets); err != nil {
			return nil, pkgerrors.NewPersistenceError("pets could not be saved")
		}

		ev := &event.PetUpdated{PetID: petID, UserID: userID, Timestamp: time.Now()}
		if err := h.eventBus.Publish(ctx, ev); err != nil {
			logger.L().Warn("event publish failed", zap.String("event", ev.EventType()), zap.Error(err))
		}

		updated := pets[i]
		return &updated, nil
	}
	return nil, pkgerrors.NewNotFoundError("pet")
}

func (h *PetHandlers) loadPets(ctx context.Context, userID string) ([]aggregate.Pet, error) {
	var pets []aggregate.Pet
	if _, err := h.store.Get(ctx, userID, repository.KeyPets, &pets); err != nil {
		return nil, err
	}
	return pets, nil
}
