package get_day_summary

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// BookingRepository интерфейс хранилища бронирований
type BookingRepository interface {
	ListAll(ctx context.Context) ([]*domain.Booking, error)
}

// AvailabilityCalculator считает свободные номера по дням
type AvailabilityCalculator interface {
	Compute(start, end time.Time, rooms int, bookings []*domain.Booking) domain.Availability
	TotalRooms() int
	Location() *time.Location
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
