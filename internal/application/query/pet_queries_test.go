package query

import (
	"context"
	"strings"
	"testing"

	"rifq-petcare/internal/domain/aggregate"
	"rifq-petcare/internal/domain/repository"
	"rifq-petcare/internal/infrastructure/memory"
)

func seedPets(t *testing.T, store repository.StoreGateway) {
	t.Helper()
	pets := []aggregate.Pet{
		{
			ID:    "1",
			Name:  "بادي",
			Type:  "كلب",
			Breed: "جولدن ريتريفر",
			Age:   "٣ سنوات",
			Vaccinations: []aggregate.Vaccination{
				{Name: "داء الكلب", Date: "2024-01-15", NextDue: "2025-01-15"},
			},
		},
	}
	if err := store.Set(context.Background(), "user-1", repository.KeyPets, pets); err != nil {
		t.Fatalf("Set: %v", err)
	}
}

func TestGetPetQR(t *testing.T) {
	store := memory.NewStoreGateway()
	seedPets(t, store)
	q := NewPetQueries(store)

	view, err := q.GetPetQR(context.Background(), "user-1", "1")
	if err != nil {
		t.Fatalf("GetPetQR: %v", err)
	}

	if !strings.HasPrefix(view.Image, "data:image/png;base64,") {
		t.Error("expected an embeddable PNG data URL")
	}
	if view.Payload.Name != "بادي" || view.Payload.Type != "كلب" {
		t.Errorf("payload missing pet data: %+v", view.Payload)
	}
	if len(view.Payload.Vaccinations) != 1 {
		t.Errorf("payload missing vaccinations: %+v", view.Payload.Vaccinations)
	}
	if view.Payload.LastUpdated == "" {
		t.Error("payload missing lastUpdated stamp")
	}
}

func TestGetPetQRUnknownPet(t *testing.T) {
	q := NewPetQueries(memory.NewStoreGateway())

	if _, err := q.GetPetQR(context.Background(), "user-1", "missing"); err == nil {
		t.Error("expected error for unknown pet")
	}
}

func TestDecodePetQRRejectsGarbage(t *testing.T) {
	q := NewPetQueries(memory.NewStoreGateway())

	if _, err := q.DecodePetQR("definitely not a pet profile"); err == nil {
		t.Error("expected invalid code error")
	}
}

func TestListPetsEmpty(t *testing.T) {
	q := NewPetQueries(memory.NewStoreGateway())

	pets, err := q.ListPets(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ListPets: %v", err)
	}
	if pets == nil || len(pets) != 0 {
		t.Errorf("expected empty non-nil list, got %#v", pets)
	}
}
