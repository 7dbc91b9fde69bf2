package repository

import (
	"cmp"
	"context"
	"maps"
	"slices"
	"sync"

	"hotel/internal/domains/booking/model"
	guestModel "hotel/internal/domains/guest/model"
	roomModel "hotel/internal/domains/room/model"
)

var _ Storage = (*Memory)(nil)

// Memory keeps everything in process. It backs tests and the memory storage backend.
type Memory struct {
	mu       sync.RWMutex
	rooms    map[string]roomModel.Room
	guests   map[string]guestModel.Guest
	bookings map[int64]model.Booking
}

func NewMemory(rooms []roomModel.Room, guests []guestModel.Guest) *Memory {
	m := &Memory{
		rooms:    make(map[string]roomModel.Room, len(rooms)),
		guests:   make(map[string]guestModel.Guest, len(guests)),
		bookings: map[int64]model.Booking{},
	}

	for _, room := range rooms {
		m.rooms[room.ID] = room
	}

	for _, guest := range guests {
		m.guests[guest.ID] = guest
	}

	return m
}

// Seed stores bookings as if they had been appended earlier.
func (m *Memory) Seed(bookings ...model.Booking) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, booking := range bookings {
		m.bookings[booking.ID] = booking
	}
}

func (m *Memory) Load(_ context.Context) ([]model.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	bookings := slices.Collect(maps.Values(m.bookings))
	slices.SortFunc(bookings, func(a, b model.Booking) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return bookings, nil
}

func (m *Memory) Append(_ context.Context, booking model.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.bookings[booking.ID]; exists {
		return ErrDuplicateBooking
	}

	m.bookings[booking.ID] = booking

	return nil
}

func (m *Memory) Replace(_ context.Context, booking model.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.bookings[booking.ID]; !exists {
		return ErrBookingMissing
	}

	m.bookings[booking.ID] = booking

	return nil
}

func (m *Memory) RoomExists(_ context.Context, roomID string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.rooms[roomID]

	return ok, nil
}

func (m *Memory) GuestExists(_ context.Context, guestID string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.guests[guestID]

	return ok, nil
}

func (m *Memory) Rooms(_ context.Context) ([]roomModel.Room, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rooms := slices.Collect(maps.Values(m.rooms))
	slices.SortFunc(rooms, func(a, b roomModel.Room) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return rooms, nil
}
