package get_day_summary

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// UseCase use case для сводки загрузки за один календарный день
type UseCase struct {
	bookingRepo BookingRepository
	calculator  AvailabilityCalculator
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, calculator AvailabilityCalculator, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		calculator:  calculator,
		logger:      logger,
	}
}

// Execute считает занятые и свободные номера за день, проверяя интервал от полуночи до конца дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// день берётся как есть и интерпретируется в календаре калькулятора
	y, m, d := req.Date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, uc.calculator.Location())

	uc.logger.Info("GetDaySummary: date=%s", domain.DayKey(day))

	bookings, err := uc.bookingRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Error("GetDaySummary: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %w", ErrInternal, err)
	}

	result := uc.calculator.Compute(day, domain.EndOfDay(day), 1, bookings)

	total := uc.calculator.TotalRooms()
	return &Response{
		Date:           domain.DayKey(day),
		TotalRooms:     total,
		AvailableRooms: result.AvailableRooms,
		BookedRooms:    total - result.AvailableRooms,
	}, nil
}
