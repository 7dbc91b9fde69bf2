package model

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDateRange        = errors.New("check-in must be before check-out")
	ErrRoomNotFound            = errors.New("room not found")
	ErrGuestNotFound           = errors.New("guest not found")
	ErrRoomUnavailable         = errors.New("room is not available for the requested dates")
	ErrBookingNotFound         = errors.New("booking not found")
	ErrBookingNotActive        = errors.New("booking is not active")
	ErrBookingAlreadyCancelled = errors.New("booking is already cancelled")
)

// ConflictError names the active booking that already holds the requested dates.
type ConflictError struct {
	RoomID    string
	BookingID int64
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("room %s is already booked by booking %d for the requested dates", e.RoomID, e.BookingID)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrRoomUnavailable
}
