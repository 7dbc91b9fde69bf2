package dto

import (
	"hotel/internal/domains/booking/model"
	bookingDto "hotel/internal/domains/booking/model/dto"
)

// ExportRequest narrows the exported history. Empty fields export everything.
type ExportRequest struct {
	RoomID string `json:"room_id" validate:"omitempty,max=64"`
	Status string `json:"status"  validate:"omitempty,oneof=active cancelled"`
}

// Matches reports whether the booking belongs in the export.
func (r *ExportRequest) Matches(booking model.Booking) bool {
	if r.RoomID != "" && booking.RoomID != r.RoomID {
		return false
	}

	return r.Status == "" || string(booking.Status) == r.Status
}

// Document is the JSON object written to storage.
type Document struct {
	ExportedAt string                       `json:"exported_at"`
	ExportedBy string                       `json:"exported_by"`
	Total      int                          `json:"total"`
	Bookings   []bookingDto.BookingResponse `json:"bookings"`
}

func (d *Document) FromModels(models []model.Booking) {
	d.Total = len(models)

	d.Bookings = make([]bookingDto.BookingResponse, len(models))
	for i, mod := range models {
		d.Bookings[i].FromModel(mod)
	}
}

type ExportResponse struct {
	URL        string `json:"url"`
	ObjectName string `json:"object_name"`
	Total      int    `json:"total"`
}
