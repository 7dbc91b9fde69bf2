package dto_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	roomModel "hotel/internal/domains/room/model"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBookingRequest_Stay(t *testing.T) {
	req := dto.CreateBookingRequest{RoomID: "101", GuestID: "guest-x", CheckIn: "2024-03-01", CheckOut: "2024-03-05"}

	checkIn, checkOut, err := req.Stay()
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", timezone.FormatDay(checkIn))
	assert.Equal(t, "2024-03-05", timezone.FormatDay(checkOut))

	req.CheckOut = "05/03/2024"
	_, _, err = req.Stay()
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestUpdateBookingRequest(t *testing.T) {
	req := dto.UpdateBookingRequest{}
	assert.True(t, req.IsEmpty())

	req.CheckOut = "2024-03-08"
	assert.False(t, req.IsEmpty())

	checkIn, checkOut, err := req.Stay()
	require.NoError(t, err)
	assert.True(t, checkIn.IsZero())
	assert.Equal(t, "2024-03-08", timezone.FormatDay(checkOut))
}

func TestFilterBookingsRequest_FromRequest(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantErr   bool
		wantRoom  string
		wantFrom  string
		wantTo    string
		wantPage  int
		wantLimit int
	}{
		{name: "no filter", query: "", wantPage: 1, wantLimit: 10},
		{name: "full filter", query: "?from=2024-03-01&to=2024-03-31&room_id=101&page=2&limit=5", wantRoom: "101", wantFrom: "2024-03-01", wantTo: "2024-03-31", wantPage: 2, wantLimit: 5},
		{name: "open start", query: "?to=2024-03-31", wantTo: "2024-03-31", wantPage: 1, wantLimit: 10},
		{name: "malformed day", query: "?from=yesterday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/v1/bookings"+tt.query, nil)

			var req dto.FilterBookingsRequest
			err := req.FromRequest(r)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, req.Page)
			assert.Equal(t, tt.wantLimit, req.Limit)

			filter, err := req.ToFilter()
			require.NoError(t, err)
			assert.Equal(t, tt.wantRoom, filter.RoomID)

			if tt.wantFrom == "" {
				assert.True(t, filter.From.IsZero())
			} else {
				assert.Equal(t, tt.wantFrom, timezone.FormatDay(filter.From))
			}

			if tt.wantTo == "" {
				assert.True(t, filter.To.IsZero())
			} else {
				assert.Equal(t, tt.wantTo, timezone.FormatDay(filter.To))
			}
		})
	}
}

func TestAvailabilityRequest(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		wantNil  bool
		wantCode int
	}{
		{name: "no range", query: "", wantNil: true},
		{name: "full range", query: "?check_in=2024-03-01&check_out=2024-03-04"},
		{name: "only check-in", query: "?check_in=2024-03-01", wantCode: http.StatusBadRequest},
		{name: "only check-out", query: "?check_out=2024-03-04", wantCode: http.StatusBadRequest},
		{name: "malformed", query: "?check_in=2024-13-01&check_out=2024-03-04", wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/v1/rooms/available"+tt.query, nil)

			var req dto.AvailabilityRequest

			err := req.FromRequest(r)
			if err == nil {
				var rng *model.DateRange

				rng, err = req.ToRange()
				if err == nil {
					assert.Equal(t, tt.wantNil, rng == nil)
				}
			}

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestBookingResponse_FromModel(t *testing.T) {
	checkIn, err := timezone.ParseDay("2024-03-01")
	require.NoError(t, err)

	now := timezone.Now()
	booking := model.Booking{
		ID:       42,
		RoomID:   "101",
		GuestID:  "guest-x",
		CheckIn:  checkIn,
		CheckOut: checkIn.AddDate(0, 0, 4),
		Status:   model.StatusActive,
		Metadata: gModel.NewMetadata(now, "front-desk"),
	}

	var response dto.BookingResponse
	response.FromModel(booking)

	assert.Equal(t, int64(42), response.ID)
	assert.Equal(t, "101", response.RoomID)
	assert.Equal(t, "guest-x", response.GuestID)
	assert.Equal(t, "2024-03-01", response.CheckIn)
	assert.Equal(t, "2024-03-05", response.CheckOut)
	assert.Equal(t, 4, response.Nights)
	assert.Equal(t, "active", response.Status)
	assert.Equal(t, "front-desk", response.CreatedBy)
	assert.NotEmpty(t, response.CreatedAt)
}

func TestGetBookingsResponse_FromModels(t *testing.T) {
	bookings := make([]model.Booking, 7)
	for i := range bookings {
		bookings[i] = model.Booking{ID: int64(i + 1), Status: model.StatusActive}
	}

	var response dto.GetBookingsResponse
	response.FromModels(bookings, gDto.QueryParams{Page: 2, Limit: 3})

	assert.Equal(t, 7, response.TotalData)
	assert.Equal(t, 3, response.TotalPage)
	require.Len(t, response.Bookings, 3)
	assert.Equal(t, int64(4), response.Bookings[0].ID)
	assert.Equal(t, int64(6), response.Bookings[2].ID)

	response.FromModels(bookings, gDto.QueryParams{Page: 5, Limit: 3})
	assert.Empty(t, response.Bookings)
	assert.NotNil(t, response.Bookings)
}

func TestGetRoomsResponse_FromModels(t *testing.T) {
	var response dto.GetRoomsResponse
	response.FromModels([]roomModel.Room{{ID: "101", Number: "101", Type: "double", Capacity: 2}})

	require.Len(t, response.Rooms, 1)
	assert.Equal(t, "double", response.Rooms[0].Type)
	assert.Equal(t, 2, response.Rooms[0].Capacity)
}
