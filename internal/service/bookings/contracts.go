package bookings

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// BookingRepository интерфейс хранилища бронирований
// ReplaceAll - единственная операция записи, набор всегда перезаписывается целиком
type BookingRepository interface {
	ListAll(ctx context.Context) ([]*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ReplaceAll(ctx context.Context, bookings []*domain.Booking) error
}

// IDGenerator генератор идентификаторов бронирований
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator генерирует идентификаторы UUIDv4
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальная реализация TimeProvider
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time {
	return time.Now()
}

// TransactionManager интерфейс для управления транзакциями
// Чтение и перезапись набора выполняются внутри одной транзакции
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
