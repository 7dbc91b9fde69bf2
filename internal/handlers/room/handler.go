package room

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/service"
	"hotel/shared/constant"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	engine service.Engine
	otel   otel.Otel
}

func New(engine service.Engine, otel otel.Otel) Handler {
	return Handler{
		engine: engine,
		otel:   otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Get("/available", handler.GetAvailableRooms)
	})
}

// GetAvailableRooms lists rooms free for a stay.
// @Summary Get available rooms
// @Description Rooms with no active booking overlapping [check_in, check_out). Without a range every room is listed.
// @Tags Room
// @Produce json
// @Param check_in query string false "First night (YYYY-MM-DD)"
// @Param check_out query string false "Departure day (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetRoomsResponse] "Available rooms"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/available [get]
func (handler *Handler) GetAvailableRooms(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailableRooms")
	defer scope.End()

	req := dto.AvailabilityRequest{}

	if err := req.FromRequest(request); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	rng, err := req.ToRange()
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	rooms, err := handler.engine.GetAvailableRooms(ctx, rng)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get available rooms")

		response.WithError(writer, err)

		return
	}

	res := dto.GetRoomsResponse{}
	res.FromModels(rooms)

	response.WithJSON(writer, http.StatusOK, res)
}
