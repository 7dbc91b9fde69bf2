package model

import "time"

type EventType string

const (
	EventCreated   EventType = "booking.created"
	EventUpdated   EventType = "booking.updated"
	EventCancelled EventType = "booking.cancelled"
)

// Event describes one committed change. Previous is set for updates and cancellations.
type Event struct {
	Type       EventType
	Booking    Booking
	Previous   *Booking
	Actor      string
	OccurredAt time.Time
}
