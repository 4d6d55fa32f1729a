// Package qr encodes pet profiles into scannable QR codes and decodes scanned
// payloads back into pet data.
package qr

import (
	"encoding/base64"
	"encoding/json"
	"time"

	qrcode "github.com/skip2/go-qrcode"

	"rifq-petcare/internal/domain/aggregate"

	pkgerrors "rifq-petcare/pkg/errors"
)

// Payload is the JSON document embedded in a pet's QR code
type Payload struct {
	Name         string                  `json:"name"`
	Type         string                  `json:"type"`
	Breed        string                  `json:"breed"`
	Age          string                  `json:"age"`
	Vaccinations []aggregate.Vaccination `json:"vaccinations"`
	LastUpdated  string                  `json:"lastUpdated,omitempty"`
}

// NewPayload builds the QR payload for a pet, stamped with the current time
func NewPayload(pet *aggregate.Pet, now time.Time) Payload {
	vaccinations := pet.Vaccinations
	if vaccinations == nil {
		vaccinations = []aggregate.Vaccination{}
	}
	return Payload{
		Name:         pet.Name,
		Type:         pet.Type,
		Breed:        pet.Breed,
		Age:          pet.Age,
		Vaccinations: vaccinations,
		LastUpdated:  now.UTC().Format(time.RFC3339),
	}
}

// EncodePNG renders the payload as a PNG QR code
func EncodePNG(p Payload, size int) ([]byte, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, pkgerrors.NewInternalError("failed to encode QR payload")
	}
	png, err := qrcode.Encode(string(data), qrcode.Medium, size)
	if err != nil {
		return nil, pkgerrors.NewInternalError("failed to render QR code")
	}
	return png, nil
}

// EncodeDataURL renders the payload as an image-embeddable data URL
func EncodeDataURL(p Payload, size int) (string, error) {
	png, err := EncodePNG(p, size)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

// Decode parses a scanned payload. Non-JSON data or JSON that does not match
// the pet schema is rejected as an invalid code; decoding never panics.
func Decode(data string) (Payload, error) {
	var p Payload
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return Payload{}, pkgerrors.NewInvalidQRError()
	}
	if p.Name == "" || p.Type == "" {
		return Payload{}, pkgerrors.NewInvalidQRError()
	}
	if p.LastUpdated != "" {
		if _, err := time.Parse(time.RFC3339, p.LastUpdated); err != nil {
			return Payload{}, pkgerrors.NewInvalidQRError()
		}
	}
	if p.Vaccinations == nil {
		p.Vaccinations = []aggregate.Vaccination{}
	}
	return p, nil
}
