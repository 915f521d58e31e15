package delete_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/pkg/txmanager"
)

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

// Handle DELETE /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]
	if bookingID == "" {
		h.logger.Warn("DELETE /bookings/{id} - Missing booking ID")
		handlers.RespondBadRequest(w, handlers.MsgMissingBookingID)
		return
	}

	deleted, err := h.service.Delete(r.Context(), bookingID)
	if err != nil {
		if errors.Is(err, txmanager.ErrSerialization) {
			h.logger.Warn("DELETE /bookings/{id} - Concurrent update: booking_id=%s", bookingID)
			handlers.RespondConflict(w, handlers.MsgConcurrentUpdate)
			return
		}

		h.logger.Error("DELETE /bookings/{id} - Failed to delete booking: booking_id=%s, error=%v", bookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /bookings/{id} - booking_id=%s, deleted=%t", bookingID, deleted)
	handlers.RespondJSON(w, http.StatusOK, DeleteBookingResponse{ID: bookingID, Deleted: deleted})
}
