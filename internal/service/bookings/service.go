package bookings

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/booking"
)

// Service управляет записями бронирований: создание записи, правка, удаление
// Проверка наличия номеров в его обязанности не входит
type Service struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	idGenerator  IDGenerator
	timeProvider TimeProvider
	validate     *validator.Validate
	totalRooms   int
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	idGenerator IDGenerator,
	timeProvider TimeProvider,
	totalRooms int,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		idGenerator:  idGenerator,
		timeProvider: timeProvider,
		validate:     newValidator(),
		totalRooms:   totalRooms,
		logger:       logger,
	}
}

// Build валидирует черновик и собирает новую бронь с идентификатором и временем создания
// В хранилище ничего не пишет
func (s *Service) Build(draft domain.BookingDraft) (*domain.Booking, error) {
	draft.ProgramTitle = strings.TrimSpace(draft.ProgramTitle)

	if err := s.validateDraft(draft); err != nil {
		s.logger.Warn("Build: validation failed: %v", err)
		return nil, err
	}

	return &domain.Booking{
		ID:            s.idGenerator.NewID(),
		ProgramTitle:  draft.ProgramTitle,
		ProgramType:   draft.ProgramType,
		NumberOfRooms: draft.NumberOfRooms,
		Status:        draft.Status,
		StartDate:     draft.StartDate,
		EndDate:       draft.EndDate,
		CreatedAt:     s.timeProvider.Now(),
	}, nil
}

// List возвращает бронирования по возрастанию даты заезда
// status == nil - все бронирования
func (s *Service) List(ctx context.Context, status *domain.BookingStatus) ([]*domain.Booking, error) {
	all, err := s.bookingRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %w", ErrInternal, err)
	}

	result := make([]*domain.Booking, 0, len(all))
	for _, b := range all {
		if status != nil && b.Status != *status {
			continue
		}
		result = append(result, b)
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].StartDate.Equal(result[j].StartDate) {
			return result[i].ID < result[j].ID
		}
		return result[i].StartDate.Before(result[j].StartDate)
	})

	return result, nil
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %w", ErrInternal, err)
	}

	return booking, nil
}

// Preview возвращает бронь id с наложенным патчем без сохранения
// Используется для проверки наличия номеров перед Update
func (s *Service) Preview(ctx context.Context, id string, patch domain.BookingPatch) (*domain.Booking, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged, err := s.merge(current, patch)
	if err != nil {
		s.logger.Warn("Preview: validation failed for booking id=%s: %v", id, err)
		return nil, err
	}

	return merged, nil
}

// Update накладывает патч на бронь и сохраняет весь набор
// Наличие номеров не перепроверяется, это делает вызывающий
func (s *Service) Update(ctx context.Context, id string, patch domain.BookingPatch) (*domain.Booking, error) {
	s.logger.Info("Update: updating booking id=%s", id)

	var result *domain.Booking

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		all, err := s.bookingRepo.ListAll(txCtx)
		if err != nil {
			s.logger.Error("Update: repository error: %v", err)
			return fmt.Errorf("%w: Update - list bookings: %w", ErrInternal, err)
		}

		idx := indexOf(all, id)
		if idx < 0 {
			s.logger.Warn("Update: booking id=%s not found", id)
			return ErrBookingNotFound
		}

		merged, err := s.merge(all[idx], patch)
		if err != nil {
			s.logger.Warn("Update: validation failed for booking id=%s: %v", id, err)
			return err
		}

		all[idx] = merged
		if err := s.bookingRepo.ReplaceAll(txCtx, all); err != nil {
			s.logger.Error("Update: failed to persist booking id=%s: %v", id, err)
			return fmt.Errorf("%w: Update - persist bookings: %w", ErrInternal, err)
		}

		result = merged
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Update: successfully updated booking id=%s", id)
	return result, nil
}

// Delete удаляет бронь без каких-либо проверок
// Отсутствующий id - не ошибка, в этом случае возвращается false
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	s.logger.Info("Delete: deleting booking id=%s", id)

	deleted := false

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		all, err := s.bookingRepo.ListAll(txCtx)
		if err != nil {
			s.logger.Error("Delete: repository error: %v", err)
			return fmt.Errorf("%w: Delete - list bookings: %w", ErrInternal, err)
		}

		idx := indexOf(all, id)
		if idx < 0 {
			return nil
		}

		remaining := append(all[:idx:idx], all[idx+1:]...)
		if err := s.bookingRepo.ReplaceAll(txCtx, remaining); err != nil {
			s.logger.Error("Delete: failed to persist bookings without id=%s: %v", id, err)
			return fmt.Errorf("%w: Delete - persist bookings: %w", ErrInternal, err)
		}

		deleted = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if deleted {
		s.logger.Info("Delete: successfully deleted booking id=%s", id)
	} else {
		s.logger.Info("Delete: booking id=%s not present, nothing to delete", id)
	}
	return deleted, nil
}

func (s *Service) merge(current *domain.Booking, patch domain.BookingPatch) (*domain.Booking, error) {
	if patch.ProgramTitle != nil {
		title := strings.TrimSpace(*patch.ProgramTitle)
		patch.ProgramTitle = &title
	}

	merged := current.Clone()
	merged.Apply(patch)

	if err := s.validateDraft(draftFromBooking(merged)); err != nil {
		return nil, err
	}

	return merged, nil
}

func indexOf(bookings []*domain.Booking, id string) int {
	for i, b := range bookings {
		if b.ID == id {
			return i
		}
	}
	return -1
}
