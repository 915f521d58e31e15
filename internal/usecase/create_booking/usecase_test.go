package create_booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/availability"
	bookingsService "github.com/m04kA/SMC-RoomBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-RoomBookingService/pkg/logger"
	"github.com/m04kA/SMC-RoomBookingService/pkg/simpletxmanager"
)

type sequenceIDs struct {
	mu sync.Mutex
	n  int
}

func (g *sequenceIDs) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("new-%d", g.n)
}

type fixedClock struct{}

func (fixedClock) Now() time.Time {
	return time.Date(2023, 12, 1, 10, 0, 0, 0, time.UTC)
}

type recordedMetrics struct {
	mu       sync.Mutex
	admitted []string
	rejected []string
	evicted  int
}

func (m *recordedMetrics) BookingAdmitted(status string, evicted int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.admitted = append(m.admitted, status)
	m.evicted += evicted
}

func (m *recordedMetrics) BookingRejected(status string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rejected = append(m.rejected, status)
}

type brokenWriteRepository struct {
	*bookingRepo.MemoryRepository
}

func (r *brokenWriteRepository) ReplaceAll(context.Context, []*domain.Booking) error {
	return errors.New("connection reset")
}

func at(d, h int) time.Time {
	return time.Date(2024, 1, d, h, 0, 0, 0, time.UTC)
}

func existing(id string, rooms int, status domain.BookingStatus, start, end time.Time) *domain.Booking {
	return &domain.Booking{
		ID:            id,
		ProgramTitle:  "Existing " + id,
		ProgramType:   domain.ProgramConference,
		NumberOfRooms: rooms,
		Status:        status,
		StartDate:     start,
		EndDate:       end,
		CreatedAt:     at(1, 0),
	}
}

func request(rooms int, status domain.BookingStatus, start, end time.Time) *Request {
	return &Request{
		ProgramTitle:  "Leadership Summit",
		ProgramType:   string(domain.ProgramLeadershipDevelopment),
		NumberOfRooms: rooms,
		Status:        string(status),
		StartDate:     start,
		EndDate:       end,
	}
}

type fixture struct {
	uc      *UseCase
	repo    BookingRepository
	metrics *recordedMetrics
}

func newFixture(repo interface {
	BookingRepository
	bookingsService.BookingRepository
}) *fixture {
	txManager := simpletxmanager.NewTransactionManager()
	log := logger.NewDiscard()
	lifecycle := bookingsService.NewService(repo, txManager, &sequenceIDs{}, fixedClock{}, domain.DefaultTotalRooms, log)
	calc := availability.NewCalculator(domain.DefaultTotalRooms, time.UTC)
	m := &recordedMetrics{}

	return &fixture{
		uc:      NewUseCase(repo, lifecycle, calc, txManager, m, log),
		repo:    repo,
		metrics: m,
	}
}

func (f *fixture) snapshot(t *testing.T) []*domain.Booking {
	t.Helper()
	all, err := f.repo.ListAll(context.Background())
	require.NoError(t, err)
	return all
}

func ids(bookings []*domain.Booking) []string {
	return bookingIDs(bookings)
}

func TestExecute_PencilIntoEmptyStore(t *testing.T) {
	f := newFixture(bookingRepo.NewMemoryRepository())

	resp, err := f.uc.Execute(context.Background(), request(20, domain.StatusPencil, at(10, 14), at(12, 11)))
	require.NoError(t, err)

	assert.Equal(t, "new-1", resp.ID)
	assert.Equal(t, "pencil", resp.Status)
	assert.Empty(t, resp.EvictedBookingIDs)
	assert.Equal(t, []string{"new-1"}, ids(f.snapshot(t)))
	assert.Equal(t, []string{"pencil"}, f.metrics.admitted)
}

func TestExecute_ConfirmedEvictsOverlappingPencil(t *testing.T) {
	f := newFixture(bookingRepo.NewMemoryRepository(
		existing("pencil-d", 10, domain.StatusPencil, at(5, 14), at(6, 11)),
		existing("pencil-other-day", 10, domain.StatusPencil, at(20, 14), at(21, 11)),
	))

	resp, err := f.uc.Execute(context.Background(), request(133, domain.StatusConfirmed, at(5, 12), at(6, 12)))
	require.NoError(t, err)

	assert.Equal(t, []string{"pencil-d"}, resp.EvictedBookingIDs)
	assert.ElementsMatch(t, []string{"pencil-other-day", "new-1"}, ids(f.snapshot(t)))
	assert.Equal(t, 1, f.metrics.evicted)
}

func TestExecute_ConfirmedEvictsPencilEvenWhenCapacityIsAvailable(t *testing.T) {
	f := newFixture(bookingRepo.NewMemoryRepository(
		existing("small-pencil", 5, domain.StatusPencil, at(5, 14), at(6, 11)),
	))

	resp, err := f.uc.Execute(context.Background(), request(10, domain.StatusConfirmed, at(5, 14), at(6, 11)))
	require.NoError(t, err)

	assert.Equal(t, []string{"small-pencil"}, resp.EvictedBookingIDs)
	assert.Equal(t, []string{"new-1"}, ids(f.snapshot(t)))
}

func TestExecute_ConfirmedNeverEvictsConfirmed(t *testing.T) {
	f := newFixture(bookingRepo.NewMemoryRepository(
		existing("confirmed", 100, domain.StatusConfirmed, at(1, 0), at(3, 0)),
	))
	before := f.snapshot(t)

	_, err := f.uc.Execute(context.Background(), request(40, domain.StatusConfirmed, at(2, 0), at(4, 0)))

	var capErr *domain.CapacityError
	require.True(t, errors.As(err, &capErr))
	assert.Equal(t, 33, capErr.Available)
	assert.Equal(t, 40, capErr.Requested)
	assert.ErrorIs(t, err, domain.ErrInsufficientCapacity)
	assert.Equal(t, before, f.snapshot(t))
	assert.Equal(t, []string{"confirmed"}, f.metrics.rejected)
}

func TestExecute_FailedAdmissionKeepsEvictionCandidates(t *testing.T) {
	f := newFixture(bookingRepo.NewMemoryRepository(
		existing("pencil", 30, domain.StatusPencil, at(5, 14), at(6, 11)),
		existing("confirmed", 110, domain.StatusConfirmed, at(5, 14), at(6, 11)),
	))
	before := f.snapshot(t)

	// после вытеснения pencil свободно 23, запрошено 50
	_, err := f.uc.Execute(context.Background(), request(50, domain.StatusConfirmed, at(5, 14), at(6, 11)))

	var capErr *domain.CapacityError
	require.True(t, errors.As(err, &capErr))
	assert.Equal(t, 23, capErr.Available)
	assert.Equal(t, before, f.snapshot(t))
}

func TestExecute_PencilNeverEvicts(t *testing.T) {
	f := newFixture(bookingRepo.NewMemoryRepository(
		existing("pencil", 120, domain.StatusPencil, at(5, 14), at(6, 11)),
	))

	_, err := f.uc.Execute(context.Background(), request(20, domain.StatusPencil, at(5, 14), at(6, 11)))

	var capErr *domain.CapacityError
	require.True(t, errors.As(err, &capErr))
	assert.Equal(t, 13, capErr.Available)
	assert.Equal(t, []string{"pencil"}, ids(f.snapshot(t)))
}

func TestExecute_PencilFitsAlongsideConfirmed(t *testing.T) {
	f := newFixture(bookingRepo.NewMemoryRepository(
		existing("confirmed", 100, domain.StatusConfirmed, at(5, 14), at(6, 11)),
	))

	_, err := f.uc.Execute(context.Background(), request(33, domain.StatusPencil, at(5, 14), at(6, 11)))
	require.NoError(t, err)
	assert.Len(t, f.snapshot(t), 2)
}

func TestExecute_AdjacentBookingDoesNotConflict(t *testing.T) {
	f := newFixture(bookingRepo.NewMemoryRepository(
		existing("morning", 133, domain.StatusConfirmed, at(5, 8), at(5, 12)),
	))

	_, err := f.uc.Execute(context.Background(), request(133, domain.StatusConfirmed, at(5, 12), at(5, 18)))
	require.NoError(t, err)
	assert.Len(t, f.snapshot(t), 2)
}

func TestExecute_ValidationBeforeStoreAccess(t *testing.T) {
	f := newFixture(bookingRepo.NewMemoryRepository())

	req := request(0, domain.StatusPencil, at(5, 14), at(6, 11))
	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = request(10, domain.StatusPencil, at(5, 14), at(5, 10))
	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "check-out time must be after check-in time")

	req = request(10, "tentative", at(5, 14), at(6, 10))
	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.Empty(t, f.snapshot(t))
	assert.Empty(t, f.metrics.rejected)
}

func TestExecute_StoreFailureIsInternal(t *testing.T) {
	f := newFixture(&brokenWriteRepository{MemoryRepository: bookingRepo.NewMemoryRepository(
		existing("pencil", 10, domain.StatusPencil, at(5, 14), at(6, 11)),
	)})

	_, err := f.uc.Execute(context.Background(), request(10, domain.StatusConfirmed, at(5, 14), at(6, 11)))
	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, []string{"pencil"}, ids(f.snapshot(t)))
	assert.Empty(t, f.metrics.admitted)
}

func TestExecute_ConcurrentAdmissionsNeverOverbook(t *testing.T) {
	f := newFixture(bookingRepo.NewMemoryRepository())

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = f.uc.Execute(context.Background(), request(30, domain.StatusConfirmed, at(5, 14), at(6, 11)))
		}()
	}
	wg.Wait()

	// 133 / 30 = 4 брони помещаются
	assert.Len(t, f.snapshot(t), 4)
	assert.Len(t, f.metrics.rejected, 6)
}

func TestSplitEvictions(t *testing.T) {
	candidate := existing("c", 10, domain.StatusConfirmed, at(5, 14), at(7, 11))
	bookings := []*domain.Booking{
		existing("p-overlap", 10, domain.StatusPencil, at(6, 14), at(8, 11)),
		existing("p-touching", 10, domain.StatusPencil, at(7, 11), at(8, 11)),
		existing("c-overlap", 10, domain.StatusConfirmed, at(6, 14), at(8, 11)),
	}

	kept, evicted := splitEvictions(bookings, candidate)

	assert.Equal(t, []string{"p-touching", "c-overlap"}, ids(kept))
	assert.Equal(t, []string{"p-overlap"}, ids(evicted))
}
