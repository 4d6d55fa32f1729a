package event

import "time"

// DomainEvent is implemented by all events raised by aggregates
type DomainEvent interface {
	EventType() string
	AggregateID() string
	OccurredAt() time.Time
}
