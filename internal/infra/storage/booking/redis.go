package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// DefaultRedisKey ключ, под которым хранится весь набор бронирований
const DefaultRedisKey = "hotel_bookings"

// RedisRepository хранит весь набор бронирований одним JSON-массивом под одним ключом
// Запись набора - одна команда SET, поэтому ReplaceAll атомарен
type RedisRepository struct {
	client redis.Cmdable
	key    string
}

// NewRedisRepository создает репозиторий бронирований поверх redis
func NewRedisRepository(client redis.Cmdable, key string) *RedisRepository {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisRepository{
		client: client,
		key:    key,
	}
}

// ListAll возвращает все бронирования. Отсутствующий ключ - пустой набор
func (r *RedisRepository) ListAll(ctx context.Context) ([]*domain.Booking, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return make([]*domain.Booking, 0), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - get %s: %w", ErrExecQuery, r.key, err)
	}

	return decodeBookings(data)
}

// GetByID получает бронирование по ID
func (r *RedisRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	bookings, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, b := range bookings {
		if b.ID == id {
			return b, nil
		}
	}

	return nil, ErrBookingNotFound
}

// ReplaceAll перезаписывает весь набор бронирований
func (r *RedisRepository) ReplaceAll(ctx context.Context, bookings []*domain.Booking) error {
	data, err := encodeBookings(bookings)
	if err != nil {
		return err
	}

	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("%w: ReplaceAll - set %s: %w", ErrExecQuery, r.key, err)
	}

	return nil
}
