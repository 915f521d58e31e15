package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	bookingsService "github.com/m04kA/SMC-RoomBookingService/internal/service/bookings"
)

// UseCase use case для приёма нового бронирования
type UseCase struct {
	bookingRepo BookingRepository
	builder     BookingBuilder
	calculator  AvailabilityCalculator
	txManager   TransactionManager
	metrics     MetricsRecorder
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	builder BookingBuilder,
	calculator AvailabilityCalculator,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		builder:     builder,
		calculator:  calculator,
		txManager:   txManager,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute выполняет приём бронирования: проверка, вытеснение, повторная проверка, запись
// Подтверждённая бронь вытесняет пересекающиеся pencil-брони, но только если после этого
// номеров хватает. При отказе хранилище не меняется
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: title=%q, rooms=%d, status=%s, period=%s - %s",
		req.ProgramTitle, req.NumberOfRooms, req.Status,
		req.StartDate.Format(domain.DateFormat+" "+domain.TimeFormat), req.EndDate.Format(domain.DateFormat+" "+domain.TimeFormat))

	// 1. Валидация и сборка брони (до обращения к хранилищу)
	candidate, err := uc.builder.Build(domain.BookingDraft{
		ProgramTitle:  req.ProgramTitle,
		ProgramType:   domain.ProgramType(req.ProgramType),
		NumberOfRooms: req.NumberOfRooms,
		Status:        domain.BookingStatus(req.Status),
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
	})
	if err != nil {
		if errors.Is(err, bookingsService.ErrInvalidInput) {
			uc.logger.Warn("CreateBooking: validation failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		uc.logger.Error("CreateBooking: failed to build booking: %v", err)
		return nil, fmt.Errorf("%w: failed to build booking: %v", ErrInternal, err)
	}

	var evicted []*domain.Booking

	// 2. Чтение, расчёт и запись набора в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		evicted = nil

		// 2.1. Получаем весь набор бронирований
		all, err := uc.bookingRepo.ListAll(txCtx)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list bookings: %v", err)
			return fmt.Errorf("%w: failed to list bookings: %w", ErrInternal, err)
		}

		// 2.2. Подтверждённая бронь предварительно вытесняет пересекающиеся pencil-брони
		working := all
		if candidate.IsConfirmed() {
			working, evicted = splitEvictions(all, candidate)
			if len(evicted) > 0 {
				uc.logger.Info("CreateBooking: %d pencil booking(s) are eviction candidates: %v",
					len(evicted), bookingIDs(evicted))
			}
		}

		// 2.3. Проверяем наличие номеров на оставшемся наборе
		availability := uc.calculator.Compute(candidate.StartDate, candidate.EndDate, candidate.NumberOfRooms, working)
		if !availability.Available {
			uc.logger.Warn("CreateBooking: insufficient capacity, requested=%d, available=%d",
				availability.RequestedRooms, availability.AvailableRooms)
			return domain.NewCapacityError(availability)
		}

		// 2.4. Вытеснение и добавление фиксируются одной записью набора
		working = append(working, candidate)
		if err := uc.bookingRepo.ReplaceAll(txCtx, working); err != nil {
			uc.logger.Error("CreateBooking: failed to persist bookings: %v", err)
			return fmt.Errorf("%w: failed to persist bookings: %w", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrInsufficientCapacity) {
			uc.metrics.BookingRejected(string(candidate.Status))
		}
		return nil, err
	}

	uc.metrics.BookingAdmitted(string(candidate.Status), len(evicted))
	uc.logger.Info("CreateBooking: successfully created booking id=%s, evicted=%d", candidate.ID, len(evicted))

	return &Response{
		ID:                candidate.ID,
		ProgramTitle:      candidate.ProgramTitle,
		ProgramType:       string(candidate.ProgramType),
		NumberOfRooms:     candidate.NumberOfRooms,
		Status:            string(candidate.Status),
		StartDate:         candidate.StartDate,
		EndDate:           candidate.EndDate,
		CreatedAt:         candidate.CreatedAt,
		EvictedBookingIDs: bookingIDs(evicted),
	}, nil
}
