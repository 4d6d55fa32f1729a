package event

import "time"

// PetRegistered event
type PetRegistered struct {
	PetID     string    `json:"pet_id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Breed     string    `json:"breed"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *PetRegistered) EventType() string     { return "PetRegistered" }
func (e *PetRegistered) AggregateID() string   { return e.PetID }
func (e *PetRegistered) OccurredAt() time.Time { return e.Timestamp }

// PetUpdated event
type PetUpdated struct {
	PetID     string    `json:"pet_id"`
	UserID    string    `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *PetUpdated) EventType() string     { return "PetUpdated" }
func (e *PetUpdated) AggregateID() string   { return e.PetID }
func (e *PetUpdated) OccurredAt() time.Time { return e.Timestamp }
