package booking

import (
	"context"
	"sync"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// MemoryRepository хранит набор бронирований в памяти процесса
// Наружу отдаются только копии, поэтому изменения вне ReplaceAll не видны хранилищу
type MemoryRepository struct {
	mu       sync.RWMutex
	bookings []*domain.Booking
}

// NewMemoryRepository создает репозиторий с начальным набором бронирований
func NewMemoryRepository(initial ...*domain.Booking) *MemoryRepository {
	return &MemoryRepository{bookings: cloneAll(initial)}
}

func (r *MemoryRepository) ListAll(_ context.Context) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return cloneAll(r.bookings), nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.bookings {
		if b.ID == id {
			return b.Clone(), nil
		}
	}

	return nil, ErrBookingNotFound
}

func (r *MemoryRepository) ReplaceAll(_ context.Context, bookings []*domain.Booking) error {
	snapshot := cloneAll(bookings)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.bookings = snapshot
	return nil
}

func cloneAll(bookings []*domain.Booking) []*domain.Booking {
	result := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, b.Clone())
	}
	return result
}
