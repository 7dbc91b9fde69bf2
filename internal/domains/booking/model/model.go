package model

import (
	"time"

	"hotel/shared/model"
	"hotel/shared/timezone"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID       = "id"
	FieldRoomID   = "room_id"
	FieldGuestID  = "guest_id"
	FieldCheckIn  = "check_in"
	FieldCheckOut = "check_out"
	FieldStatus   = "status"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
)

// Booking occupies its room for the half-open day range [CheckIn, CheckOut).
type Booking struct {
	ID             int64     `bson:"_id"       db:"id"`
	RoomID         string    `bson:"room_id"   db:"room_id"`
	GuestID        string    `bson:"guest_id"  db:"guest_id"`
	CheckIn        time.Time `bson:"check_in"  db:"check_in"`
	CheckOut       time.Time `bson:"check_out" db:"check_out"`
	Status         Status    `bson:"status"    db:"status"`
	model.Metadata `bson:",inline"`
}

func (b Booking) IsActive() bool {
	return b.Status == StatusActive
}

// Nights is the number of nights covered by the stay.
func (b Booking) Nights() int {
	return int(b.CheckOut.Sub(b.CheckIn).Hours()/24 + 0.5)
}

// Collides reports whether both bookings are active, share a room and overlap.
func (b Booking) Collides(other Booking) bool {
	return b.IsActive() && other.IsActive() &&
		b.RoomID == other.RoomID &&
		Overlaps(b.CheckIn, b.CheckOut, other.CheckIn, other.CheckOut)
}

// Normalize truncates both dates to calendar days in the application timezone.
func (b Booking) Normalize() Booking {
	b.CheckIn = timezone.Day(b.CheckIn)
	b.CheckOut = timezone.Day(b.CheckOut)

	return b
}

// DateRange is a half-open stay interval [From, To).
type DateRange struct {
	From time.Time
	To   time.Time
}

// NewDateRange builds a range from two calendar days.
func NewDateRange(from, to time.Time) DateRange {
	return DateRange{
		From: timezone.Day(from),
		To:   timezone.Day(to),
	}
}

// Validate requires both bounds with From strictly before To.
func (r DateRange) Validate() error {
	if r.From.IsZero() || r.To.IsZero() || !r.From.Before(r.To) {
		return ErrInvalidDateRange
	}

	return nil
}

// BookingFilter narrows FilterBookings. From and To are inclusive calendar days;
// a zero bound leaves that side open and an empty RoomID matches every room.
type BookingFilter struct {
	From   time.Time
	To     time.Time
	RoomID string
}

// Validate rejects a filter whose bounds are reversed.
func (f BookingFilter) Validate() error {
	if !f.From.IsZero() && !f.To.IsZero() && f.To.Before(f.From) {
		return ErrInvalidDateRange
	}

	return nil
}

// Window returns the half-open interval matched by the filter. Open sides stay zero.
func (f BookingFilter) Window() (from, to time.Time) {
	if !f.From.IsZero() {
		from = timezone.Day(f.From)
	}

	if !f.To.IsZero() {
		to = timezone.Day(f.To).AddDate(0, 0, 1)
	}

	return from, to
}
