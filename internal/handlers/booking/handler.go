package booking

import (
	"net/http"
	"strconv"

	"hotel/infras/otel"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/service"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/validator"
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
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Patch("/{id}", handler.UpdateBooking)
		routerGroup.Delete("/{id}", handler.CancelBooking)
	})
}

// CreateBooking handles the creation of a new booking.
// @Summary Create a new booking
// @Description Reserve a room for a guest over [check_in, check_out).
// @Tags Booking
// @Accept json
// @Produce json
// @Param X-Actor header string false "Actor recorded on the booking"
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse] "Booking created"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	checkIn, checkOut, err := req.Stay()
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	booking, err := handler.engine.CreateBooking(ctx, req.RoomID, req.GuestID, checkIn, checkOut)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created successfully by " + shared.ActorFromContext(ctx))

	res := dto.BookingResponse{}
	res.FromModel(booking)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetBookings lists active bookings.
// @Summary Filter bookings
// @Description List active bookings overlapping the inclusive [from, to] day range, ordered by check-in.
// @Tags Booking
// @Accept json
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param from query string false "First day (YYYY-MM-DD)"
// @Param to query string false "Last day (YYYY-MM-DD)"
// @Param room_id query string false "Filter by room ID"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	req := dto.FilterBookingsRequest{}

	if err := req.FromRequest(request); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	filter, err := req.ToFilter()
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	bookings, err := handler.engine.FilterBookings(ctx, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to filter bookings")

		response.WithError(writer, err)

		return
	}

	res := dto.GetBookingsResponse{}
	res.FromModels(bookings, req.QueryParams)

	response.WithJSON(writer, http.StatusOK, res)
}

// GetBookingByID retrieves a booking by its ID.
// @Summary Get a booking by ID
// @Tags Booking
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id} [get]
func (handler *Handler) GetBookingByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id, err := bookingID(request)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	booking, err := handler.engine.GetBooking(ctx, id)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res := dto.BookingResponse{}
	res.FromModel(booking)

	response.WithJSON(writer, http.StatusOK, res)
}

// UpdateBooking moves a booking to another room and/or dates.
// @Summary Update a booking
// @Description Omitted fields keep their current value. Room and dates are checked together.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Param request body dto.UpdateBookingRequest true "Update Booking Request"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking updated"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [patch]
func (handler *Handler) UpdateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBooking")
	defer scope.End()

	id, err := bookingID(request)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	req := dto.UpdateBookingRequest{}

	if err = validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if req.IsEmpty() {
		response.WithError(writer, failure.BadRequestFromString("at least one of room_id, check_in or check_out is required"))

		return
	}

	checkIn, checkOut, err := req.Stay()
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	booking, err := handler.engine.UpdateBooking(ctx, id, req.RoomID, checkIn, checkOut)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("booking", id).Msg("failed to update booking")

		response.WithError(writer, err)

		return
	}

	res := dto.BookingResponse{}
	res.FromModel(booking)

	response.WithJSON(writer, http.StatusOK, res)
}

// CancelBooking cancels a booking. The record is kept with status cancelled.
// @Summary Cancel a booking
// @Tags Booking
// @Produce json
// @Param id path int true "Booking ID"
// @Param tolerate_cancelled query bool false "Treat an already cancelled booking as success"
// @Success 200 {object} response.Message "Booking cancelled"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [delete]
func (handler *Handler) CancelBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	id, err := bookingID(request)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	tolerateParam := request.URL.Query().Get(constant.RequestParamTolerateCancelled)
	if err = validator.ValidateVar(tolerateParam, "omitempty,boolean"); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	var opts []service.CancelOption

	if tolerate := shared.ConvertStringToBool(tolerateParam); tolerate != nil && *tolerate {
		opts = append(opts, service.TolerateCancelled())
	}

	if err = handler.engine.CancelBooking(ctx, id, opts...); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("booking", id).Msg("failed to cancel booking")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Booking cancelled successfully")
}

func bookingID(request *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(request, constant.RequestParamID), 10, 64)
	if err != nil || id <= 0 {
		return 0, failure.BadRequestFromString("id must be a positive integer") //nolint:wrapcheck
	}

	return id, nil
}
