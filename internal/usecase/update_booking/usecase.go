package update_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	bookingsService "github.com/m04kA/SMC-RoomBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// UseCase use case для правки бронирования с повторной проверкой наличия номеров
type UseCase struct {
	bookingRepo BookingRepository
	lifecycle   BookingLifecycle
	calculator  AvailabilityCalculator
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	lifecycle BookingLifecycle,
	calculator AvailabilityCalculator,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		lifecycle:   lifecycle,
		calculator:  calculator,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute применяет правку, если после неё номеров хватает
// Сама правка не учитывается при проверке, pencil-брони не вытесняются
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: id=%s", req.ID)

	if req.ID == "" {
		return nil, fmt.Errorf("%w: booking id is required", ErrInvalidInput)
	}

	if req.IsEmpty() {
		uc.logger.Warn("UpdateBooking: empty patch for id=%s", req.ID)
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Текущая бронь: новые дата и время накладываются на сохранённые
		current, err := uc.lifecycle.GetByID(txCtx, req.ID)
		if err != nil {
			return mapLifecycleError(err)
		}

		patch, err := toPatch(req, current, uc.calculator.Location())
		if err != nil {
			uc.logger.Warn("UpdateBooking: invalid schedule for id=%s: %v", req.ID, err)
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		// 2. Бронь после правки (валидация полей)
		merged, err := uc.lifecycle.Preview(txCtx, req.ID, patch)
		if err != nil {
			return mapLifecycleError(err)
		}

		// 3. Повторная проверка наличия номеров без самой брони, если правка затрагивает занятость
		if patch.ChangesCapacity() {
			all, err := uc.bookingRepo.ListAll(txCtx)
			if err != nil {
				uc.logger.Error("UpdateBooking: failed to list bookings: %v", err)
				return fmt.Errorf("%w: failed to list bookings: %w", ErrInternal, err)
			}

			availability := uc.calculator.ComputeExcluding(merged.StartDate, merged.EndDate, merged.NumberOfRooms, all, []string{req.ID})
			if !availability.Available {
				uc.logger.Warn("UpdateBooking: insufficient capacity for id=%s, requested=%d, available=%d",
					req.ID, availability.RequestedRooms, availability.AvailableRooms)
				return domain.NewCapacityError(availability)
			}
		}

		// 4. Сохраняем правку
		updated, err := uc.lifecycle.Update(txCtx, req.ID, patch)
		if err != nil {
			return mapLifecycleError(err)
		}

		result = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateBooking: successfully updated booking id=%s", result.ID)

	return &Response{
		ID:            result.ID,
		ProgramTitle:  result.ProgramTitle,
		ProgramType:   string(result.ProgramType),
		NumberOfRooms: result.NumberOfRooms,
		Status:        string(result.Status),
		StartDate:     result.StartDate,
		EndDate:       result.EndDate,
		CreatedAt:     result.CreatedAt,
	}, nil
}

func toPatch(req *Request, current *domain.Booking, loc *time.Location) (domain.BookingPatch, error) {
	patch := domain.BookingPatch{
		ProgramTitle:  req.ProgramTitle,
		NumberOfRooms: req.NumberOfRooms,
	}
	if req.ProgramType != nil {
		programType := domain.ProgramType(*req.ProgramType)
		patch.ProgramType = &programType
	}
	if req.Status != nil {
		status := domain.BookingStatus(*req.Status)
		patch.Status = &status
	}

	var err error
	if patch.StartDate, err = reschedule(current.StartDate, req.CheckInDate, req.CheckInTime, loc); err != nil {
		return domain.BookingPatch{}, fmt.Errorf("check-in: %w", err)
	}
	if patch.EndDate, err = reschedule(current.EndDate, req.CheckOutDate, req.CheckOutTime, loc); err != nil {
		return domain.BookingPatch{}, fmt.Errorf("check-out: %w", err)
	}

	return patch, nil
}

// reschedule переносит момент на другой день и/или время суток
// Незаданная часть берётся из текущего момента в календаре loc, nil - момент не меняется
func reschedule(current time.Time, date *time.Time, tod *types.TimeString, loc *time.Location) (*time.Time, error) {
	if date == nil && tod == nil {
		return nil, nil
	}

	current = current.In(loc)

	y, m, d := current.Date()
	if date != nil {
		y, m, d = date.Date()
	}

	hour, minute, sec, nsec := current.Hour(), current.Minute(), current.Second(), current.Nanosecond()
	if tod != nil {
		if err := tod.Validate(); err != nil {
			return nil, err
		}
		hour, minute, sec, nsec = tod.Hour(), tod.Minute(), 0, 0
	}

	t := time.Date(y, m, d, hour, minute, sec, nsec, loc)
	return &t, nil
}

func mapLifecycleError(err error) error {
	switch {
	case errors.Is(err, bookingsService.ErrBookingNotFound):
		return ErrBookingNotFound
	case errors.Is(err, bookingsService.ErrInvalidInput):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}
}
