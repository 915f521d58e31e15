package check_availability

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
	ComputeExcluding(start, end time.Time, rooms int, bookings []*domain.Booking, excludeIDs []string) domain.Availability
	TotalRooms() int
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
