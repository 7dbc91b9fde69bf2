package booking_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	otelMocks "hotel/infras/otel/mocks"
	bookingMocks "hotel/internal/domains/booking/mocks"
	"hotel/internal/domains/booking/model"
	"hotel/internal/handlers/booking"
	"hotel/shared/failure"
	"hotel/shared/timezone"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

func newRouter(engine *bookingMocks.MockEngine) http.Handler {
	handler := booking.New(engine, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	return router
}

func serve(t *testing.T, router http.Handler, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	request := httptest.NewRequest(method, target, strings.NewReader(body))
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	var env envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &env))

	return recorder, env
}

func sampleBooking(t *testing.T) model.Booking {
	t.Helper()

	checkIn, err := timezone.ParseDay("2024-03-01")
	require.NoError(t, err)

	return model.Booking{
		ID:       7,
		RoomID:   "101",
		GuestID:  "guest-x",
		CheckIn:  checkIn,
		CheckOut: checkIn.AddDate(0, 0, 4),
		Status:   model.StatusActive,
	}
}

func TestHandler_CreateBooking(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(t *testing.T, engine *bookingMocks.MockEngine)
		wantCode  int
	}{
		{
			name: "created",
			body: `{"room_id":"101","guest_id":"guest-x","check_in":"2024-03-01","check_out":"2024-03-05"}`,
			setupMock: func(t *testing.T, engine *bookingMocks.MockEngine) {
				engine.EXPECT().
					CreateBooking(gomock.Any(), "101", "guest-x", gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, _, _ string, checkIn, checkOut time.Time) (model.Booking, error) {
						assert.Equal(t, "2024-03-01", timezone.FormatDay(checkIn))
						assert.Equal(t, "2024-03-05", timezone.FormatDay(checkOut))

						return sampleBooking(t), nil
					})
			},
			wantCode: http.StatusCreated,
		},
		{
			name:      "missing guest",
			body:      `{"room_id":"101","check_in":"2024-03-01","check_out":"2024-03-05"}`,
			setupMock: func(_ *testing.T, _ *bookingMocks.MockEngine) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "malformed day",
			body:      `{"room_id":"101","guest_id":"guest-x","check_in":"March 1st","check_out":"2024-03-05"}`,
			setupMock: func(_ *testing.T, _ *bookingMocks.MockEngine) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "unknown field",
			body:      `{"room_id":"101","guest_id":"guest-x","check_in":"2024-03-01","check_out":"2024-03-05","price":10}`,
			setupMock: func(_ *testing.T, _ *bookingMocks.MockEngine) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "room taken",
			body: `{"room_id":"101","guest_id":"guest-x","check_in":"2024-03-01","check_out":"2024-03-05"}`,
			setupMock: func(_ *testing.T, engine *bookingMocks.MockEngine) {
				engine.EXPECT().
					CreateBooking(gomock.Any(), "101", "guest-x", gomock.Any(), gomock.Any()).
					Return(model.Booking{}, failure.Conflict(&model.ConflictError{RoomID: "101", BookingID: 3}))
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "storage failure hides the cause",
			body: `{"room_id":"101","guest_id":"guest-x","check_in":"2024-03-01","check_out":"2024-03-05"}`,
			setupMock: func(_ *testing.T, engine *bookingMocks.MockEngine) {
				engine.EXPECT().
					CreateBooking(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.Booking{}, errors.New("connection reset by peer"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			engine := bookingMocks.NewMockEngine(ctrl)
			tt.setupMock(t, engine)

			recorder, env := serve(t, newRouter(engine), http.MethodPost, "/v1/bookings", tt.body)

			assert.Equal(t, tt.wantCode, recorder.Code)

			switch tt.wantCode {
			case http.StatusCreated:
				var body map[string]any
				require.NoError(t, json.Unmarshal(env.Data, &body))
				assert.InDelta(t, 7, body["id"], 0)
				assert.Equal(t, "2024-03-05", body["check_out"])
				assert.InDelta(t, 4, body["nights"], 0)
			case http.StatusInternalServerError:
				assert.NotContains(t, env.Error, "connection reset")
			default:
				assert.NotEmpty(t, env.Error)
			}
		})
	}
}

func TestHandler_GetBookings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine := bookingMocks.NewMockEngine(ctrl)
	router := newRouter(engine)

	bookings := make([]model.Booking, 3)
	for i := range bookings {
		bookings[i] = sampleBooking(t)
		bookings[i].ID = int64(i + 1)
	}

	engine.EXPECT().
		FilterBookings(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, filter model.BookingFilter) ([]model.Booking, error) {
			assert.Equal(t, "101", filter.RoomID)
			assert.Equal(t, "2024-03-01", timezone.FormatDay(filter.From))
			assert.True(t, filter.To.IsZero())

			return bookings, nil
		})

	recorder, env := serve(t, router, http.MethodGet, "/v1/bookings?room_id=101&from=2024-03-01&page=2&limit=2", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Bookings  []map[string]any `json:"bookings"`
		TotalPage int              `json:"total_page"`
		TotalData int              `json:"total_data"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &body))
	assert.Equal(t, 3, body.TotalData)
	assert.Equal(t, 2, body.TotalPage)
	require.Len(t, body.Bookings, 1)
	assert.InDelta(t, 3, body.Bookings[0]["id"], 0)

	engine.EXPECT().
		FilterBookings(gomock.Any(), gomock.Any()).
		Return(nil, failure.BadRequest(model.ErrInvalidDateRange))

	recorder, _ = serve(t, router, http.MethodGet, "/v1/bookings?from=2024-03-09&to=2024-03-01", "")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder, _ = serve(t, router, http.MethodGet, "/v1/bookings?to=someday", "")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandler_GetBookingByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine := bookingMocks.NewMockEngine(ctrl)
	router := newRouter(engine)

	engine.EXPECT().GetBooking(gomock.Any(), int64(7)).Return(sampleBooking(t), nil)

	recorder, _ := serve(t, router, http.MethodGet, "/v1/bookings/7", "")
	assert.Equal(t, http.StatusOK, recorder.Code)

	engine.EXPECT().GetBooking(gomock.Any(), int64(8)).Return(model.Booking{}, failure.NotFound(model.ErrBookingNotFound))

	recorder, _ = serve(t, router, http.MethodGet, "/v1/bookings/8", "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	for _, id := range []string{"abc", "0", "-4"} {
		recorder, _ = serve(t, router, http.MethodGet, "/v1/bookings/"+id, "")
		assert.Equal(t, http.StatusBadRequest, recorder.Code, id)
	}
}

func TestHandler_UpdateBooking(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(engine *bookingMocks.MockEngine)
		wantCode  int
	}{
		{
			name: "moves room only",
			body: `{"room_id":"102"}`,
			setupMock: func(engine *bookingMocks.MockEngine) {
				engine.EXPECT().
					UpdateBooking(gomock.Any(), int64(7), "102", time.Time{}, time.Time{}).
					Return(model.Booking{ID: 7, RoomID: "102", Status: model.StatusActive}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "empty body",
			body:      `{}`,
			setupMock: func(_ *bookingMocks.MockEngine) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "cancelled booking",
			body: `{"check_out":"2024-03-09"}`,
			setupMock: func(engine *bookingMocks.MockEngine) {
				engine.EXPECT().
					UpdateBooking(gomock.Any(), int64(7), "", time.Time{}, gomock.Any()).
					Return(model.Booking{}, failure.Conflict(model.ErrBookingNotActive))
			},
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			engine := bookingMocks.NewMockEngine(ctrl)
			tt.setupMock(engine)

			recorder, _ := serve(t, newRouter(engine), http.MethodPatch, "/v1/bookings/7", tt.body)
			assert.Equal(t, tt.wantCode, recorder.Code)
		})
	}
}

func TestHandler_CancelBooking(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		setupMock func(engine *bookingMocks.MockEngine)
		wantCode  int
	}{
		{
			name: "cancelled",
			setupMock: func(engine *bookingMocks.MockEngine) {
				engine.EXPECT().CancelBooking(gomock.Any(), int64(7)).Return(nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "already cancelled",
			setupMock: func(engine *bookingMocks.MockEngine) {
				engine.EXPECT().CancelBooking(gomock.Any(), int64(7)).Return(failure.Conflict(model.ErrBookingAlreadyCancelled))
			},
			wantCode: http.StatusConflict,
		},
		{
			name:  "tolerated",
			query: "?tolerate_cancelled=true",
			setupMock: func(engine *bookingMocks.MockEngine) {
				engine.EXPECT().CancelBooking(gomock.Any(), int64(7), gomock.Any()).Return(nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:  "explicitly not tolerated",
			query: "?tolerate_cancelled=false",
			setupMock: func(engine *bookingMocks.MockEngine) {
				engine.EXPECT().CancelBooking(gomock.Any(), int64(7)).Return(nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "malformed tolerate flag",
			query:     "?tolerate_cancelled=maybe",
			setupMock: func(_ *bookingMocks.MockEngine) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			engine := bookingMocks.NewMockEngine(ctrl)
			tt.setupMock(engine)

			recorder, env := serve(t, newRouter(engine), http.MethodDelete, fmt.Sprintf("/v1/bookings/7%s", tt.query), "")
			assert.Equal(t, tt.wantCode, recorder.Code)

			if tt.wantCode == http.StatusOK {
				assert.Equal(t, "Booking cancelled successfully", env.Message)
			}
		})
	}
}
