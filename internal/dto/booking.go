package dto

import "shareit/internal/models"

// NewBookingRequest is the body of POST /bookings. Start and end are wire
// timestamps (see TimeLayout).
type NewBookingRequest struct {
	ItemID int64  `json:"itemId" validate:"required,gt=0"`
	Start  string `json:"start" validate:"required"`
	End    string `json:"end" validate:"required"`
}

// BookerDto identifies the user who placed a booking.
type BookerDto struct {
	ID int64 `json:"id"`
}

// BookingDto is the wire representation of a booking.
type BookingDto struct {
	ID     int64                `json:"id"`
	Item   ItemShortDto         `json:"item"`
	Booker BookerDto            `json:"booker"`
	Status models.BookingStatus `json:"status"`
	Start  string               `json:"start"`
	End    string               `json:"end"`
}

// LastBookingDto is the compact booking shape used for the last/next
// annotations on an owner's items.
type LastBookingDto struct {
	ID     int64     `json:"id"`
	Booker BookerDto `json:"booker"`
	Start  string    `json:"start"`
	End    string    `json:"end"`
}

func MapToBookingDto(booking models.Booking) BookingDto {
	return BookingDto{
		ID:     booking.ID,
		Item:   MapToItemShortDto(booking.Item),
		Booker: BookerDto{ID: booking.BookerID},
		Status: booking.Status,
		Start:  FormatTime(booking.StartTime),
		End:    FormatTime(booking.EndTime),
	}
}

func MapToBookingDtos(bookings []models.Booking) []BookingDto {
	dtos := make([]BookingDto, 0, len(bookings))
	for _, b := range bookings {
		dtos = append(dtos, MapToBookingDto(b))
	}
	return dtos
}

func MapToLastBookingDto(booking models.Booking) *LastBookingDto {
	return &LastBookingDto{
		ID:     booking.ID,
		Booker: BookerDto{ID: booking.BookerID},
		Start:  FormatTime(booking.StartTime),
		End:    FormatTime(booking.EndTime),
	}
}
