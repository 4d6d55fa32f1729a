package qr

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"rifq-petcare/internal/domain/aggregate"
)

func testPet() *aggregate.Pet {
	return &aggregate.Pet{
		ID:    "1",
		Name:  "بادي",
		Type:  "كلب",
		Breed: "جولدن ريتريفر",
		Age:   "٣ سنوات",
		Vaccinations: []aggregate.Vaccination{
			{Name: "داء الكلب", Date: "2024-01-15", NextDue: "2025-01-15"},
		},
	}
}

func TestPayloadRoundTrip(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	payload := NewPayload(testPet(), now)

	if payload.LastUpdated != "2025-03-10T12:00:00Z" {
		t.Errorf("unexpected lastUpdated: %q", payload.LastUpdated)
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	got, err := Decode(string(raw))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Name != "بادي" || got.Type != "كلب" || got.Breed != "جولدن ريتريفر" {
		t.Errorf("decoded payload differs: %+v", got)
	}
	if len(got.Vaccinations) != 1 || got.Vaccinations[0].Name != "داء الكلب" {
		t.Errorf("vaccinations lost in round trip: %+v", got.Vaccinations)
	}
}

func TestNewPayloadNormalizesNilVaccinations(t *testing.T) {
	pet := testPet()
	pet.Vaccinations = nil

	payload := NewPayload(pet, time.Now())
	if payload.Vaccinations == nil {
		t.Error("vaccinations should encode as an empty list, not null")
	}
}

func TestDecodeRejectsInvalidPayloads(t *testing.T) {
	for _, data := range []string{
		"not json at all",
		"",
		"12345",
		`{"foo":"bar"}`,
		`{"name":"بادي"}`,
		`{"name":"بادي","type":"كلب","lastUpdated":"yesterday"}`,
	} {
		if _, err := Decode(data); err == nil {
			t.Errorf("expected invalid code error for %q", data)
		}
	}
}

func TestEncodeDataURL(t *testing.T) {
	url, err := EncodeDataURL(NewPayload(testPet(), time.Now()), 256)
	if err != nil {
		t.Fatalf("EncodeDataURL: %v", err)
	}
	if !strings.HasPrefix(url, "data:image/png;base64,") {
		t.Errorf("expected PNG data URL, got %q", url[:min(len(url), 40)])
	}
}
