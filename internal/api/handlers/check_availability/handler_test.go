package check_availability

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	checkAvailability "github.com/m04kA/SMC-RoomBookingService/internal/usecase/check_availability"
	"github.com/m04kA/SMC-RoomBookingService/pkg/logger"
)

type stubUseCase struct {
	got  *checkAvailability.Request
	resp *checkAvailability.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error) {
	s.got = req
	return s.resp, s.err
}

func serve(uc CheckAvailabilityUseCase, query string) *httptest.ResponseRecorder {
	h := NewHandler(uc, time.UTC, logger.NewDiscard())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability?"+query, nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	end := time.Date(2025, 3, 11, 11, 0, 0, 0, time.UTC)
	uc := &stubUseCase{resp: &domain.Availability{
		Available:      true,
		AvailableRooms: 93,
		RequestedRooms: 5,
		TotalRooms:     133,
		StartDate:      start,
		EndDate:        end,
		Daily: []domain.DailyAvailability{
			{Day: "2025-03-10", AvailableRooms: 93},
			{Day: "2025-03-11", AvailableRooms: 133},
		},
	}}

	rec := serve(uc, "checkInDate=2025-03-10&checkInTime=09:30&checkOutDate=2025-03-11&rooms=5&excludeIds=a,%20b,")

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, start, uc.got.StartDate)
	assert.Equal(t, end, uc.got.EndDate)
	assert.Equal(t, 5, uc.got.Rooms)
	assert.Equal(t, []string{"a", "b"}, uc.got.ExcludeIDs)

	var body AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Available)
	assert.Equal(t, 93, body.AvailableRooms)
	require.Len(t, body.DailyAvailability, 2)
	assert.Equal(t, "2025-03-11", body.DailyAvailability[1].Date)
}

func TestHandle_DefaultsToOneRoom(t *testing.T) {
	uc := &stubUseCase{resp: &domain.Availability{}}

	rec := serve(uc, "checkInDate=2025-03-10&checkOutDate=2025-03-11")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, uc.got.Rooms)
	assert.Empty(t, uc.got.ExcludeIDs)
}

func TestHandle_BadRequests(t *testing.T) {
	tests := []struct {
		name  string
		query string
		err   error
		want  int
	}{
		{name: "missing dates", query: "rooms=2", want: http.StatusBadRequest},
		{name: "bad rooms", query: "checkInDate=2025-03-10&checkOutDate=2025-03-11&rooms=many", want: http.StatusBadRequest},
		{name: "bad time", query: "checkInDate=2025-03-10&checkInTime=7pm&checkOutDate=2025-03-11", want: http.StatusBadRequest},
		{name: "invalid input", query: "checkInDate=2025-03-10&checkOutDate=2025-03-09", err: checkAvailability.ErrInvalidInput, want: http.StatusBadRequest},
		{name: "internal", query: "checkInDate=2025-03-10&checkOutDate=2025-03-11", err: errors.New("down"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&stubUseCase{err: tt.err}, tt.query)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
