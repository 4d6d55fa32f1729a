package event

import "time"

// UserSignedUp event
type UserSignedUp struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *UserSignedUp) EventType() string     { return "UserSignedUp" }
func (e *UserSignedUp) AggregateID() string   { return e.UserID }
func (e *UserSignedUp) OccurredAt() time.Time { return e.Timestamp }
