package event

import "time"

// AppointmentBooked event
type AppointmentBooked struct {
	AppointmentID string    `json:"appointment_id"`
	UserID        string    `json:"user_id"`
	ClinicID      string    `json:"clinic_id"`
	ClinicName    string    `json:"clinic_name"`
	ServiceID     string    `json:"service_id"`
	ServiceName   string    `json:"service_name"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	PetName       string    `json:"pet_name"`
	Timestamp     time.Time `json:"timestamp"`
}

func (e *AppointmentBooked) EventType() string     { return "AppointmentBooked" }
func (e *AppointmentBooked) AggregateID() string   { return e.AppointmentID }
func (e *AppointmentBooked) OccurredAt() time.Time { return e.Timestamp }

// AppointmentCancelled event
type AppointmentCancelled struct {
	AppointmentID string    `json:"appointment_id"`
	UserID        string    `json:"user_id"`
	Timestamp     time.Time `json:"timestamp"`
}

func (e *AppointmentCancelled) EventType() string     { return "AppointmentCancelled" }
func (e *AppointmentCancelled) AggregateID() string   { return e.AppointmentID }
func (e *AppointmentCancelled) OccurredAt() time.Time { return e.Timestamp }
