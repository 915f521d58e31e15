package get_day_summary

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

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	getDaySummary "github.com/m04kA/SMC-RoomBookingService/internal/usecase/get_day_summary"
	"github.com/m04kA/SMC-RoomBookingService/pkg/logger"
)

type stubUseCase struct {
	got  *getDaySummary.Request
	resp *getDaySummary.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *getDaySummary.Request) (*getDaySummary.Response, error) {
	s.got = req
	return s.resp, s.err
}

func serve(uc GetDaySummaryUseCase, date string) *httptest.ResponseRecorder {
	h := NewHandler(uc, time.UTC, logger.NewDiscard())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability/days/"+date, nil)
	req = mux.SetURLVars(req, map[string]string{"date": date})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	uc := &stubUseCase{resp: &domain.DaySummary{
		Date:           "2025-03-10",
		TotalRooms:     133,
		AvailableRooms: 33,
		BookedRooms:    100,
	}}

	rec := serve(uc, "2025-03-10")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), uc.got.Date)

	var body DaySummaryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 100, body.BookedRooms)
	assert.Equal(t, 75.2, body.OccupancyRate)
	assert.Equal(t, 24.8, body.AvailabilityRate)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&stubUseCase{}, "10-03-2025").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&stubUseCase{err: errors.New("down")}, "2025-03-10").Code)
}
