package notifier

import (
	"context"

	"hotel/infras/otel"
	"hotel/infras/rabbitmq"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/service"
	"hotel/shared/constant"

	"github.com/rs/zerolog/log"
)

var _ service.Observer = (*RabbitMQ)(nil)

// RabbitMQ routes booking events by type, so consumers can bind to booking.* or a single change kind.
type RabbitMQ struct {
	publisher rabbitmq.Publisher
	otel      otel.Otel
}

func NewRabbitMQ(publisher rabbitmq.Publisher, otel otel.Otel) *RabbitMQ {
	return &RabbitMQ{
		publisher: publisher,
		otel:      otel,
	}
}

func (r *RabbitMQ) OnBookingEvent(ctx context.Context, event model.Event) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".RouteBooking")
	defer scope.End()

	payload := NewPayload(event)

	err := r.publisher.Publish(ctx, rabbitmq.Message{
		RoutingKey: payload.Type,
		Body:       payload,
		Headers: map[string]string{
			HeaderEventID: payload.ID,
			HeaderActor:   payload.Actor,
		},
	})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("booking", event.Booking.ID).Str("event", payload.Type).Msg("failed to route booking event")
	}
}
