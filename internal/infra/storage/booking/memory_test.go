package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	bookings := sampleBookings()
	require.NoError(t, repo.ReplaceAll(ctx, bookings))

	// изменения переданного набора не влияют на хранилище
	bookings[0].NumberOfRooms = 1

	got, err := repo.GetByID(ctx, "a1f2")
	require.NoError(t, err)
	assert.Equal(t, 40, got.NumberOfRooms)

	got.NumberOfRooms = 2
	again, err := repo.GetByID(ctx, "a1f2")
	require.NoError(t, err)
	assert.Equal(t, 40, again.NumberOfRooms)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	require.NoError(t, repo.ReplaceAll(ctx, nil))
	all, err = repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
