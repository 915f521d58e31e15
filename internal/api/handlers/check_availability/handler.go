package check_availability

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	checkAvailability "github.com/m04kA/SMC-RoomBookingService/internal/usecase/check_availability"
)

const (
	msgInvalidRooms   = "некорректное количество номеров"
	msgMissingDates   = "не указаны даты заезда и выезда"
	msgInvalidRequest = "некорректные параметры запроса: проверьте даты и количество номеров"
)

type Handler struct {
	useCase  CheckAvailabilityUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/availability?checkInDate=...&checkInTime=...&checkOutDate=...&checkOutTime=...&rooms=...&excludeIds=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if query.Get("checkInDate") == "" || query.Get("checkOutDate") == "" {
		h.logger.Warn("GET /availability - Missing dates")
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	start, msg, err := handlers.ParseCheckIn(query.Get("checkInDate"), query.Get("checkInTime"), h.location)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid check-in: %v", err)
		handlers.RespondBadRequest(w, msg)
		return
	}

	end, msg, err := handlers.ParseCheckOut(query.Get("checkOutDate"), query.Get("checkOutTime"), h.location)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid check-out: %v", err)
		handlers.RespondBadRequest(w, msg)
		return
	}

	rooms := 1
	if roomsStr := query.Get("rooms"); roomsStr != "" {
		rooms, err = strconv.Atoi(roomsStr)
		if err != nil {
			h.logger.Warn("GET /availability - Invalid rooms: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRooms)
			return
		}
	}

	var excludeIDs []string
	for _, id := range strings.Split(query.Get("excludeIds"), ",") {
		if id = strings.TrimSpace(id); id != "" {
			excludeIDs = append(excludeIDs, id)
		}
	}

	result, err := h.useCase.Execute(r.Context(), &checkAvailability.Request{
		StartDate:  start,
		EndDate:    end,
		Rooms:      rooms,
		ExcludeIDs: excludeIDs,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /availability - Failed to check availability: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - available=%t, availableRooms=%d", result.Available, result.AvailableRooms)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
