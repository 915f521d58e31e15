package update_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// BookingRepository интерфейс хранилища бронирований
type BookingRepository interface {
	ListAll(ctx context.Context) ([]*domain.Booking, error)
}

// BookingLifecycle правка записей бронирований
type BookingLifecycle interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	Preview(ctx context.Context, id string, patch domain.BookingPatch) (*domain.Booking, error)
	Update(ctx context.Context, id string, patch domain.BookingPatch) (*domain.Booking, error)
}

// AvailabilityCalculator считает свободные номера по дням
type AvailabilityCalculator interface {
	ComputeExcluding(start, end time.Time, rooms int, bookings []*domain.Booking, excludeIDs []string) domain.Availability
	Location() *time.Location
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
