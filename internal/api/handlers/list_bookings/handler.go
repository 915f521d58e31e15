package list_bookings

import (
	"net/http"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

const msgInvalidStatus = "некорректный статус бронирования, ожидается pencil или confirmed"

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings?status=pencil|confirmed
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var status *domain.BookingStatus

	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		s := domain.BookingStatus(statusStr)
		if !s.IsValid() {
			h.logger.Warn("GET /bookings - Invalid status: %s", statusStr)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		status = &s
	}

	list, err := h.service.List(r.Context(), status)
	if err != nil {
		h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings - Retrieved %d bookings", len(list))
	handlers.RespondJSON(w, http.StatusOK, FromDomainBookings(list))
}
