package dto

import (
	"fmt"
	"net/http"
	"time"

	"hotel/internal/domains/booking/model"
	roomModel "hotel/internal/domains/room/model"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/timezone"
	"hotel/shared/validator"
)

type CreateBookingRequest struct {
	RoomID   string `json:"room_id"   validate:"required,max=64"`
	GuestID  string `json:"guest_id"  validate:"required,max=64"`
	CheckIn  string `json:"check_in"  validate:"required,day"`
	CheckOut string `json:"check_out" validate:"required,day"`
}

// Stay parses the requested check-in and check-out days. Ordering is left to the engine.
func (c *CreateBookingRequest) Stay() (checkIn, checkOut time.Time, err error) {
	return parseStay(c.CheckIn, c.CheckOut)
}

// UpdateBookingRequest changes any subset of room and dates. Omitted fields keep their value.
type UpdateBookingRequest struct {
	RoomID   string `json:"room_id"   validate:"omitempty,max=64"`
	CheckIn  string `json:"check_in"  validate:"omitempty,day"`
	CheckOut string `json:"check_out" validate:"omitempty,day"`
}

func (u *UpdateBookingRequest) Stay() (checkIn, checkOut time.Time, err error) {
	return parseStay(u.CheckIn, u.CheckOut)
}

// IsEmpty reports whether the request changes nothing.
func (u *UpdateBookingRequest) IsEmpty() bool {
	return u.RoomID == "" && u.CheckIn == "" && u.CheckOut == ""
}

func parseStay(checkIn, checkOut string) (in, out time.Time, err error) {
	if in, err = parseDay(constant.RequestParamCheckIn, checkIn); err != nil {
		return in, out, err
	}

	if out, err = parseDay(constant.RequestParamCheckOut, checkOut); err != nil {
		return in, out, err
	}

	return in, out, nil
}

// parseDay leaves an empty value as the zero time.
func parseDay(name, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}

	day, err := timezone.ParseDay(value)
	if err != nil {
		return time.Time{}, failure.BadRequestFromString(fmt.Sprintf("%s must be a date in YYYY-MM-DD format", name)) //nolint:wrapcheck
	}

	return day, nil
}

type FilterBookingsRequest struct {
	From   string `json:"from"    validate:"omitempty,day"`
	To     string `json:"to"      validate:"omitempty,day"`
	RoomID string `json:"room_id" validate:"omitempty,max=64"`
	gDto.QueryParams
}

// FromRequest reads the filter and pagination from the query string.
func (f *FilterBookingsRequest) FromRequest(r *http.Request) error {
	query := r.URL.Query()

	f.From = query.Get(constant.RequestParamFrom)
	f.To = query.Get(constant.RequestParamTo)
	f.RoomID = query.Get(constant.RequestParamRoomID)
	f.QueryParams.FromRequest(r, true)

	return validator.ValidateStruct(f)
}

func (f *FilterBookingsRequest) ToFilter() (model.BookingFilter, error) {
	from, err := parseDay(constant.RequestParamFrom, f.From)
	if err != nil {
		return model.BookingFilter{}, err
	}

	to, err := parseDay(constant.RequestParamTo, f.To)
	if err != nil {
		return model.BookingFilter{}, err
	}

	return model.BookingFilter{From: from, To: to, RoomID: f.RoomID}, nil
}

// AvailabilityRequest takes either both days or neither.
type AvailabilityRequest struct {
	CheckIn  string `json:"check_in"  validate:"omitempty,day"`
	CheckOut string `json:"check_out" validate:"omitempty,day"`
}

func (a *AvailabilityRequest) FromRequest(r *http.Request) error {
	query := r.URL.Query()

	a.CheckIn = query.Get(constant.RequestParamCheckIn)
	a.CheckOut = query.Get(constant.RequestParamCheckOut)

	return validator.ValidateStruct(a)
}

// ToRange returns nil when no range was requested.
func (a *AvailabilityRequest) ToRange() (*model.DateRange, error) {
	if a.CheckIn == "" && a.CheckOut == "" {
		return nil, nil
	}

	if a.CheckIn == "" || a.CheckOut == "" {
		return nil, failure.BadRequestFromString("check_in and check_out must be given together") //nolint:wrapcheck
	}

	checkIn, checkOut, err := parseStay(a.CheckIn, a.CheckOut)
	if err != nil {
		return nil, err
	}

	rng := model.NewDateRange(checkIn, checkOut)

	return &rng, nil
}

type BookingResponse struct {
	ID       int64  `json:"id"`
	RoomID   string `json:"room_id"`
	GuestID  string `json:"guest_id"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	Nights   int    `json:"nights"`
	Status   string `json:"status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.GuestID = model.GuestID
	r.CheckIn = timezone.FormatDay(model.CheckIn)
	r.CheckOut = timezone.FormatDay(model.CheckOut)
	r.Nights = model.Nights()
	r.Status = string(model.Status)
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

// FromModels renders the requested page of an already ordered result.
func (r *GetBookingsResponse) FromModels(models []model.Booking, params gDto.QueryParams) {
	r.TotalData = len(models)
	r.TotalPage = shared.CalculateTotalPage(len(models), params.Limit)

	page := shared.Paginate(models, params)

	r.Bookings = make([]BookingResponse, len(page))
	for i, mod := range page {
		r.Bookings[i].FromModel(mod)
	}
}

type RoomResponse struct {
	ID       string `json:"id"`
	Number   string `json:"number"`
	Type     string `json:"type"`
	Capacity int    `json:"capacity"`
}

func (r *RoomResponse) FromModel(model roomModel.Room) {
	r.ID = model.ID
	r.Number = model.Number
	r.Type = model.Type
	r.Capacity = model.Capacity
}

type GetRoomsResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

func (r *GetRoomsResponse) FromModels(models []roomModel.Room) {
	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
