package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

func sampleBookings() []*domain.Booking {
	created := time.Date(2023, 12, 20, 8, 15, 30, 123456789, time.UTC)
	return []*domain.Booking{
		{
			ID:            "a1f2",
			ProgramTitle:  "Leadership Summit",
			ProgramType:   domain.ProgramLeadershipDevelopment,
			NumberOfRooms: 40,
			Status:        domain.StatusConfirmed,
			StartDate:     time.Date(2024, 1, 1, 14, 0, 0, 0, time.UTC),
			EndDate:       time.Date(2024, 1, 3, 11, 0, 0, 0, time.UTC),
			CreatedAt:     created,
		},
		{
			ID:            "b7c9",
			ProgramTitle:  "Sales Kickoff",
			ProgramType:   domain.ProgramConference,
			NumberOfRooms: 12,
			Status:        domain.StatusPencil,
			StartDate:     time.Date(2024, 1, 2, 9, 30, 0, 0, time.UTC),
			EndDate:       time.Date(2024, 1, 2, 18, 0, 0, 0, time.UTC),
			CreatedAt:     created.Add(time.Hour),
		},
	}
}

// assertSameBookings сравнивает наборы поле за полем, даты через time.Equal
func assertSameBookings(t *testing.T, want, got []*domain.Booking) {
	t.Helper()
	require.Len(t, got, len(want))

	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.Equal(t, want[i].ProgramTitle, got[i].ProgramTitle)
		assert.Equal(t, want[i].ProgramType, got[i].ProgramType)
		assert.Equal(t, want[i].NumberOfRooms, got[i].NumberOfRooms)
		assert.Equal(t, want[i].Status, got[i].Status)
		assert.True(t, want[i].StartDate.Equal(got[i].StartDate), "start date of %s", want[i].ID)
		assert.True(t, want[i].EndDate.Equal(got[i].EndDate), "end date of %s", want[i].ID)
		assert.True(t, want[i].CreatedAt.Equal(got[i].CreatedAt), "created at of %s", want[i].ID)
	}
}
