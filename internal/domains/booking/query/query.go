// Package query derives read views from a snapshot of bookings. Every function is pure:
// inputs are never mutated and results are freshly allocated.
package query

import (
	"cmp"
	"slices"
	"time"

	"hotel/internal/domains/booking/model"
	roomModel "hotel/internal/domains/room/model"
)

// AvailableRooms returns the rooms without an active booking overlapping rng, ordered by ID.
// A nil range returns every room.
func AvailableRooms(rooms []roomModel.Room, bookings []model.Booking, rng *model.DateRange) []roomModel.Room {
	occupied := map[string]struct{}{}

	if rng != nil {
		for _, booking := range bookings {
			if booking.IsActive() && model.Overlaps(booking.CheckIn, booking.CheckOut, rng.From, rng.To) {
				occupied[booking.RoomID] = struct{}{}
			}
		}
	}

	available := make([]roomModel.Room, 0, len(rooms))

	for _, room := range rooms {
		if _, taken := occupied[room.ID]; !taken {
			available = append(available, room)
		}
	}

	SortRooms(available)

	return available
}

// FilterBookings returns the active bookings matching filter, ordered by check-in then ID.
func FilterBookings(bookings []model.Booking, filter model.BookingFilter) []model.Booking {
	from, to := filter.Window()

	// An open end is widened so the shared overlap predicate applies unchanged.
	// An open start needs nothing: the zero time precedes every stay.
	if to.IsZero() {
		to = maxTime
	}

	matched := make([]model.Booking, 0, len(bookings))

	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}

		if filter.RoomID != "" && booking.RoomID != filter.RoomID {
			continue
		}

		if !model.Overlaps(booking.CheckIn, booking.CheckOut, from, to) {
			continue
		}

		matched = append(matched, booking)
	}

	Sort(matched)

	return matched
}

// Conflict returns the first active booking on candidate's room that overlaps it,
// ignoring the booking with excludeID.
func Conflict(bookings []model.Booking, candidate model.Booking, excludeID int64) (model.Booking, bool) {
	ordered := slices.Clone(bookings)
	Sort(ordered)

	for _, booking := range ordered {
		if booking.ID == excludeID {
			continue
		}

		if candidate.Collides(booking) {
			return booking, true
		}
	}

	return model.Booking{}, false
}

// Sort orders bookings in place by check-in, then by ID.
func Sort(bookings []model.Booking) {
	slices.SortFunc(bookings, func(a, b model.Booking) int {
		if c := a.CheckIn.Compare(b.CheckIn); c != 0 {
			return c
		}

		return cmp.Compare(a.ID, b.ID)
	})
}

// SortRooms orders rooms in place by ID.
func SortRooms(rooms []roomModel.Room) {
	slices.SortFunc(rooms, func(a, b roomModel.Room) int {
		return cmp.Compare(a.ID, b.ID)
	})
}

var maxTime = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)
