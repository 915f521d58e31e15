package list_bookings

import (
	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// BookingListResponse HTTP response model
type BookingListResponse struct {
	Bookings []handlers.BookingResponse `json:"bookings"`
	Total    int                        `json:"total"`
}

func FromDomainBookings(list []*domain.Booking) *BookingListResponse {
	result := make([]handlers.BookingResponse, 0, len(list))
	for _, b := range list {
		result = append(result, handlers.FromDomainBooking(b))
	}

	return &BookingListResponse{
		Bookings: result,
		Total:    len(result),
	}
}
