package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"

	"hotel/internal/domains/booking/model"
	roomModel "hotel/internal/domains/room/model"
)

var (
	ErrDuplicateBooking = errors.New("booking already stored")
	ErrBookingMissing   = errors.New("booking not stored")
)

// Storage persists bookings and answers catalog lookups for the reservation engine.
// Every engine mutation funnels through Append or Replace.
type Storage interface {
	Load(ctx context.Context) ([]model.Booking, error)
	Append(ctx context.Context, booking model.Booking) error
	Replace(ctx context.Context, booking model.Booking) error
	RoomExists(ctx context.Context, roomID string) (bool, error)
	GuestExists(ctx context.Context, guestID string) (bool, error)
	Rooms(ctx context.Context) ([]roomModel.Room, error)
}
