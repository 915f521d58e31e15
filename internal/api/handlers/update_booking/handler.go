package update_booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	updateBooking "github.com/m04kA/SMC-RoomBookingService/internal/usecase/update_booking"
	"github.com/m04kA/SMC-RoomBookingService/pkg/txmanager"
)

type Handler struct {
	useCase  UpdateBookingUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase UpdateBookingUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle PUT /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]
	if bookingID == "" {
		h.logger.Warn("PUT /bookings/{id} - Missing booking ID")
		handlers.RespondBadRequest(w, handlers.MsgMissingBookingID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody)
		return
	}

	useCaseReq, msg, err := req.ToUseCaseRequest(bookingID, h.location)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Failed to parse request: booking_id=%s, error=%v", bookingID, err)
		handlers.RespondBadRequest(w, msg)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var capacityErr *domain.CapacityError

		switch {
		case errors.As(err, &capacityErr):
			h.logger.Warn("PUT /bookings/{id} - Insufficient capacity: booking_id=%s, requested=%d, available=%d",
				bookingID, capacityErr.Requested, capacityErr.Available)
			handlers.RespondCapacityError(w, handlers.MsgInsufficientCapacity, capacityErr.Requested, capacityErr.Available)

		case errors.Is(err, updateBooking.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id} - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, handlers.MsgBookingNotFound)

		case errors.Is(err, updateBooking.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/{id} - Invalid input: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, handlers.ValidationMessage(err))

		case errors.Is(err, txmanager.ErrSerialization):
			h.logger.Warn("PUT /bookings/{id} - Concurrent update: booking_id=%s", bookingID)
			handlers.RespondConflict(w, handlers.MsgConcurrentUpdate)

		default:
			h.logger.Error("PUT /bookings/{id} - Failed to update booking: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/{id} - Booking updated successfully: booking_id=%s", bookingID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
