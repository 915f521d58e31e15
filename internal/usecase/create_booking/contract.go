package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// BookingRepository интерфейс хранилища бронирований
type BookingRepository interface {
	ListAll(ctx context.Context) ([]*domain.Booking, error)
	ReplaceAll(ctx context.Context, bookings []*domain.Booking) error
}

// BookingBuilder собирает новую бронь (валидация, идентификатор, время создания)
type BookingBuilder interface {
	Build(draft domain.BookingDraft) (*domain.Booking, error)
}

// AvailabilityCalculator считает свободные номера по дням
type AvailabilityCalculator interface {
	Compute(start, end time.Time, rooms int, bookings []*domain.Booking) domain.Availability
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder счётчики приёма бронирований
type MetricsRecorder interface {
	BookingAdmitted(status string, evicted int)
	BookingRejected(status string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
