package notifier

import (
	"context"

	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/otel"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/service"
	"hotel/shared/constant"

	"github.com/rs/zerolog/log"
)

var _ service.Observer = (*Kafka)(nil)

// Kafka publishes committed booking changes. Events are keyed by room so a room's history stays ordered.
type Kafka struct {
	client kafka.Client
	topic  string
	otel   otel.Otel
}

func NewKafka(client kafka.Client, cfg *config.Config, otel otel.Otel) *Kafka {
	return &Kafka{
		client: client,
		topic:  cfg.Kafka.BookingTopic,
		otel:   otel,
	}
}

// OnBookingEvent publishes the event. A failed publish is logged, the booking change already stands.
func (k *Kafka) OnBookingEvent(ctx context.Context, event model.Event) {
	ctx, scope := k.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".PublishBooking")
	defer scope.End()

	payload := NewPayload(event)

	scope.SetAttributes(map[string]any{
		HeaderEventID:   payload.ID,
		HeaderEventType: payload.Type,
	})

	err := k.client.SendMessages(ctx, k.topic, kafka.Message{
		Key:   event.Booking.RoomID,
		Value: payload,
		Headers: map[string]string{
			HeaderEventID:   payload.ID,
			HeaderEventType: payload.Type,
			HeaderActor:     payload.Actor,
		},
	})
	if err != nil {
		scope.TraceError(err)
		log.Error().
			Err(err).
			Str("topic", k.topic).
			Int64("booking", event.Booking.ID).
			Str("event", payload.Type).
			Msg("failed to publish booking event")

		return
	}

	log.Debug().Str("topic", k.topic).Str("event", payload.Type).Msg("booking event published")
}
