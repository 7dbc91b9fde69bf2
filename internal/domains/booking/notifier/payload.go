package notifier

import (
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/shared/constant"

	"github.com/google/uuid"
)

const (
	HeaderEventID   = "event_id"
	HeaderEventType = "event_type"
	HeaderActor     = "actor"
)

// Payload is the JSON body of every published booking event.
type Payload struct {
	ID         string               `json:"id"`
	Type       string               `json:"type"`
	Actor      string               `json:"actor"`
	OccurredAt string               `json:"occurred_at"`
	Booking    dto.BookingResponse  `json:"booking"`
	Previous   *dto.BookingResponse `json:"previous,omitempty"`
}

func NewPayload(event model.Event) Payload {
	payload := Payload{
		ID:         uuid.NewString(),
		Type:       string(event.Type),
		Actor:      event.Actor,
		OccurredAt: event.OccurredAt.Format(constant.DateFormat),
	}

	payload.Booking.FromModel(event.Booking)

	if event.Previous != nil {
		payload.Previous = &dto.BookingResponse{}
		payload.Previous.FromModel(*event.Previous)
	}

	return payload
}
