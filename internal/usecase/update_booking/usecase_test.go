package update_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/availability"
	bookingsService "github.com/m04kA/SMC-RoomBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-RoomBookingService/pkg/logger"
	"github.com/m04kA/SMC-RoomBookingService/pkg/ptr"
	"github.com/m04kA/SMC-RoomBookingService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

type staticIDs struct{}

func (staticIDs) NewID() string { return "unused" }

func at(d, h int) time.Time {
	return time.Date(2024, 1, d, h, 0, 0, 0, time.UTC)
}

func booking(id string, rooms int, status domain.BookingStatus, start, end time.Time) *domain.Booking {
	return &domain.Booking{
		ID:            id,
		ProgramTitle:  "Program " + id,
		ProgramType:   domain.ProgramTeamBuilding,
		NumberOfRooms: rooms,
		Status:        status,
		StartDate:     start,
		EndDate:       end,
		CreatedAt:     at(1, 0),
	}
}

func newUseCase(repo *bookingRepo.MemoryRepository) *UseCase {
	txManager := simpletxmanager.NewTransactionManager()
	log := logger.NewDiscard()
	lifecycle := bookingsService.NewService(repo, txManager, staticIDs{}, bookingsService.RealTimeProvider{}, domain.DefaultTotalRooms, log)
	calc := availability.NewCalculator(domain.DefaultTotalRooms, time.UTC)
	return NewUseCase(repo, lifecycle, calc, txManager, log)
}

func TestExecute_GrowWithinCapacityIgnoresSelf(t *testing.T) {
	repo := bookingRepo.NewMemoryRepository(
		booking("self", 100, domain.StatusConfirmed, at(5, 14), at(7, 11)),
		booking("other", 20, domain.StatusConfirmed, at(5, 14), at(7, 11)),
	)
	uc := newUseCase(repo)

	// 113 свободно без самой брони
	resp, err := uc.Execute(context.Background(), &Request{ID: "self", NumberOfRooms: ptr.Ptr(113)})
	require.NoError(t, err)
	assert.Equal(t, 113, resp.NumberOfRooms)
	assert.Equal(t, "Program self", resp.ProgramTitle)

	stored, err := repo.GetByID(context.Background(), "self")
	require.NoError(t, err)
	assert.Equal(t, 113, stored.NumberOfRooms)
}

func TestExecute_InsufficientCapacityNotPersisted(t *testing.T) {
	repo := bookingRepo.NewMemoryRepository(
		booking("self", 10, domain.StatusPencil, at(5, 14), at(7, 11)),
		booking("other", 100, domain.StatusConfirmed, at(8, 14), at(9, 11)),
	)
	uc := newUseCase(repo)

	// перенос на дни, где занято 100 номеров
	_, err := uc.Execute(context.Background(), &Request{
		ID:            "self",
		NumberOfRooms: ptr.Ptr(40),
		CheckInDate:   ptr.Ptr(at(8, 0)),
		CheckOutDate:  ptr.Ptr(at(9, 0)),
	})

	var capErr *domain.CapacityError
	require.True(t, errors.As(err, &capErr))
	assert.Equal(t, 33, capErr.Available)

	stored, err := repo.GetByID(context.Background(), "self")
	require.NoError(t, err)
	assert.Equal(t, 10, stored.NumberOfRooms)
	assert.Equal(t, at(5, 14), stored.StartDate)
}

func TestExecute_EditDoesNotEvictPencils(t *testing.T) {
	repo := bookingRepo.NewMemoryRepository(
		booking("self", 10, domain.StatusPencil, at(5, 14), at(7, 11)),
		booking("pencil", 120, domain.StatusPencil, at(5, 14), at(7, 11)),
	)
	uc := newUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		ID:            "self",
		Status:        ptr.Ptr("confirmed"),
		NumberOfRooms: ptr.Ptr(20),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientCapacity)

	all, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestExecute_NotFound(t *testing.T) {
	uc := newUseCase(bookingRepo.NewMemoryRepository())

	_, err := uc.Execute(context.Background(), &Request{ID: "missing", NumberOfRooms: ptr.Ptr(5)})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	repo := bookingRepo.NewMemoryRepository(booking("self", 10, domain.StatusPencil, at(5, 14), at(7, 11)))
	uc := newUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{ID: "self"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ID: "self", ProgramType: ptr.Ptr("Wedding")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		ID:           "self",
		CheckOutDate: ptr.Ptr(at(5, 0)),
		CheckOutTime: ptr.Ptr(types.TimeString("10:00")),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ID: "self", CheckInTime: ptr.Ptr(types.TimeString("25:00"))})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{NumberOfRooms: ptr.Ptr(1)})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_DateOnlyKeepsStoredTime(t *testing.T) {
	repo := bookingRepo.NewMemoryRepository(
		booking("self", 10, domain.StatusPencil, at(10, 9), at(12, 18)),
	)
	uc := newUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{ID: "self", CheckInDate: ptr.Ptr(at(9, 0))})
	require.NoError(t, err)
	assert.Equal(t, at(9, 9), resp.StartDate)
	assert.Equal(t, at(12, 18), resp.EndDate)

	stored, err := repo.GetByID(context.Background(), "self")
	require.NoError(t, err)
	assert.True(t, at(9, 9).Equal(stored.StartDate))
}

func TestExecute_TimeOnlyAppliesToStoredDate(t *testing.T) {
	repo := bookingRepo.NewMemoryRepository(
		booking("self", 10, domain.StatusPencil, at(10, 9), at(12, 18)),
	)
	uc := newUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		ID:           "self",
		ProgramTitle: ptr.Ptr("Renamed"),
		CheckOutTime: ptr.Ptr(types.TimeString("20:00")),
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", resp.ProgramTitle)
	assert.Equal(t, at(10, 9), resp.StartDate)
	assert.Equal(t, at(12, 20), resp.EndDate)
}

func TestExecute_StoredTimeReadInCalculatorZone(t *testing.T) {
	// 09:00 UTC в хранилище - 12:00 по Москве
	repo := bookingRepo.NewMemoryRepository(
		booking("self", 10, domain.StatusPencil, at(10, 9), at(12, 18)),
	)
	txManager := simpletxmanager.NewTransactionManager()
	log := logger.NewDiscard()
	lifecycle := bookingsService.NewService(repo, txManager, staticIDs{}, bookingsService.RealTimeProvider{}, domain.DefaultTotalRooms, log)
	moscow := time.FixedZone("MSK", 3*60*60)
	uc := NewUseCase(repo, lifecycle, availability.NewCalculator(domain.DefaultTotalRooms, moscow), txManager, log)

	resp, err := uc.Execute(context.Background(), &Request{
		ID:          "self",
		CheckInDate: ptr.Ptr(time.Date(2024, 1, 9, 0, 0, 0, 0, moscow)),
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 9, 12, 0, 0, 0, moscow), resp.StartDate)
}

func TestExecute_NonCapacityEditSkipsRecheck(t *testing.T) {
	// набор уже перебронирован: 100 + 100 на 133 номера
	repo := bookingRepo.NewMemoryRepository(
		booking("self", 100, domain.StatusConfirmed, at(5, 14), at(7, 11)),
		booking("other", 100, domain.StatusConfirmed, at(5, 14), at(7, 11)),
	)
	uc := newUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{ID: "self", ProgramTitle: ptr.Ptr("Renamed")})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", resp.ProgramTitle)

	_, err = uc.Execute(context.Background(), &Request{ID: "self", NumberOfRooms: ptr.Ptr(99)})
	assert.ErrorIs(t, err, domain.ErrInsufficientCapacity)
}
