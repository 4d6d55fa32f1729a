package command

import (
	"context"
	"testing"

	"rifq-petcare/internal/domain/aggregate"
	"rifq-petcare/internal/domain/repository"
)

func TestAddPetPersists(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	h := NewPetHandlers(env.store, env.eventBus, nil)

	pet, err := h.HandleAddPet(ctx, AddPet{
		UserID: "user-1",
		Name:   "بادي",
		Type:   "كلب",
		Breed:  "جولدن ريتريفر",
		Age:    "٣ سنوات",
	})
	if err != nil {
		t.Fatalf("HandleAddPet: %v", err)
	}
	if pet.ID == "" {
		t.Error("pet should get an id")
	}

	var pets []aggregate.Pet
	if _, err := env.store.Get(ctx, "user-1", repository.KeyPets, &pets); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(pets) != 1 || pets[0].Name != "بادي" {
		t.Errorf("pet not persisted: %+v", pets)
	}
}

func TestAddPetRequiresNameAndType(t *testing.T) {
	env := newTestEnv(t)
	h := NewPetHandlers(env.store, env.eventBus, nil)

	if _, err := h.HandleAddPet(context.Background(), AddPet{UserID: "user-1", Type: "كلب"}); err == nil {
		t.Error("expected error for missing name")
	}
	if _, err := h.HandleAddPet(context.Background(), AddPet{UserID: "user-1", Name: "بادي"}); err == nil {
		t.Error("expected error for missing type")
	}
}

func TestVaccinationLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	h := NewPetHandlers(env.store, env.eventBus, nil)

	pet, err := h.HandleAddPet(ctx, AddPet{UserID: "user-1", Name: "بادي", Type: "كلب"})
	if err != nil {
		t.Fatalf("HandleAddPet: %v", err)
	}

	updated, err := h.HandleAddVaccination(ctx, AddVaccination{
		UserID: "user-1",
		PetID:  pet.ID,
		Vaccination: aggregate.Vaccination{
			Name: "داء الكلب", Date: "2024-01-15", NextDue: "2025-01-15",
		},
	})
	if err != nil {
		t.Fatalf("HandleAddVaccination: %v", err)
	}
	if len(updated.Vaccinations) != 1 {
		t.Fatalf("expected 1 vaccination, got %d", len(updated.Vaccinations))
	}

	updated, err = h.HandleRemoveVaccination(ctx, RemoveVaccination{
		UserID: "user-1", PetID: pet.ID, Index: 0,
	})
	if err != nil {
		t.Fatalf("HandleRemoveVaccination: %v", err)
	}
	if len(updated.Vaccinations) != 0 {
		t.Errorf("vaccination not removed: %+v", updated.Vaccinations)
	}

	// Out-of-range index is rejected
	if _, err := h.HandleRemoveVaccination(ctx, RemoveVaccination{
		UserID: "user-1", PetID: pet.ID, Index: 5,
	}); err == nil {
		t.Error("expected error for out-of-range index")
	}
}

func TestUpdateUnknownPet(t *testing.T) {
	env := newTestEnv(t)
	h := NewPetHandlers(env.store, env.eventBus, nil)

	_, err := h.HandleUpdatePet(context.Background(), UpdatePet{
		UserID: "user-1", PetID: "missing", Name: "x", Type: "قطة",
	})
	if err == nil {
		t.Error("expected error for unknown pet")
	}
}
