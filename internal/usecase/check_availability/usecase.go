package check_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// UseCase use case для проверки наличия номеров на интервал
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

// Execute считает свободные номера по дням интервала [StartDate, EndDate)
// Брони из ExcludeIDs не учитываются
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: rooms=%d, period=%s - %s, exclude=%v",
		req.Rooms, req.StartDate.Format(domain.DateFormat+" "+domain.TimeFormat),
		req.EndDate.Format(domain.DateFormat+" "+domain.TimeFormat), req.ExcludeIDs)

	if err := validateRequest(req, uc.calculator.TotalRooms()); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	bookings, err := uc.bookingRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %w", ErrInternal, err)
	}

	result := uc.calculator.ComputeExcluding(req.StartDate, req.EndDate, req.Rooms, bookings, req.ExcludeIDs)

	uc.logger.Info("CheckAvailability: available=%t, availableRooms=%d over %d day(s)",
		result.Available, result.AvailableRooms, len(result.Daily))

	return &result, nil
}
