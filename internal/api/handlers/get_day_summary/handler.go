package get_day_summary

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	getDaySummary "github.com/m04kA/SMC-RoomBookingService/internal/usecase/get_day_summary"
)

type Handler struct {
	useCase  GetDaySummaryUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase GetDaySummaryUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/availability/days/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := mux.Vars(r)["date"]

	day, err := domain.ParseDay(dateStr, h.location)
	if err != nil {
		h.logger.Warn("GET /availability/days/{date} - Invalid date: %s", dateStr)
		handlers.RespondBadRequest(w, handlers.MsgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getDaySummary.Request{Date: day})
	if err != nil {
		if errors.Is(err, getDaySummary.ErrInvalidInput) {
			h.logger.Warn("GET /availability/days/{date} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, handlers.MsgInvalidDate)
			return
		}

		h.logger.Error("GET /availability/days/{date} - Failed to build summary: date=%s, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /availability/days/{date} - date=%s, booked=%d", result.Date, result.BookedRooms)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
