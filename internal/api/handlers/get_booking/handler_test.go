package get_booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-RoomBookingService/pkg/logger"
)

type stubService struct {
	booking *domain.Booking
	err     error
}

func (s *stubService) GetByID(_ context.Context, _ string) (*domain.Booking, error) {
	return s.booking, s.err
}

func serve(svc BookingService, id string) *httptest.ResponseRecorder {
	h := NewHandler(svc, logger.NewDiscard())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/"+id, nil)
	req = mux.SetURLVars(req, map[string]string{"bookingId": id})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	start := time.Date(2025, 5, 1, 14, 0, 0, 0, time.UTC)
	svc := &stubService{booking: &domain.Booking{
		ID:            "b-1",
		ProgramTitle:  "Offsite",
		ProgramType:   domain.ProgramTeamBuilding,
		NumberOfRooms: 20,
		Status:        domain.StatusPencil,
		StartDate:     start,
		EndDate:       start.Add(21 * time.Hour),
		CreatedAt:     start,
	}}

	rec := serve(svc, "b-1")

	require.Equal(t, http.StatusOK, rec.Code)
	var body handlers.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "b-1", body.ID)
	assert.Equal(t, "pencil", body.BookingStatus)
	assert.Equal(t, string(domain.ProgramTeamBuilding), body.ProgramType)
	assert.Equal(t, "2025-05-02T11:00:00Z", body.EndDate)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, serve(&stubService{err: bookings.ErrBookingNotFound}, "nope").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&stubService{err: errors.New("down")}, "b-1").Code)
	assert.Equal(t, http.StatusBadRequest, serve(&stubService{}, "").Code)
}
