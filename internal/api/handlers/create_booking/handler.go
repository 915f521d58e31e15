package create_booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	createBooking "github.com/m04kA/SMC-RoomBookingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-RoomBookingService/pkg/txmanager"
)

type Handler struct {
	useCase  CreateBookingUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase CreateBookingUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, msg, err := req.ToUseCaseRequest(h.location)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msg)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var capacityErr *domain.CapacityError

		switch {
		case errors.As(err, &capacityErr):
			h.logger.Warn("POST /bookings - Insufficient capacity: requested=%d, available=%d",
				capacityErr.Requested, capacityErr.Available)
			handlers.RespondCapacityError(w, handlers.MsgInsufficientCapacity, capacityErr.Requested, capacityErr.Available)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, handlers.ValidationMessage(err))

		case errors.Is(err, txmanager.ErrSerialization):
			h.logger.Warn("POST /bookings - Concurrent update: %v", err)
			handlers.RespondConflict(w, handlers.MsgConcurrentUpdate)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: title=%q, error=%v", req.ProgramTitle, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, evicted=%v",
		result.ID, result.EvictedBookingIDs)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
