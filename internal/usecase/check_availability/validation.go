package check_availability

import (
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, totalRooms int) error {
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: check-in and check-out are required", ErrInvalidInput)
	}

	if !req.EndDate.After(req.StartDate) {
		return fmt.Errorf("%w: check-out must be after check-in", ErrInvalidInput)
	}

	if domain.ExceedsMaxStay(req.StartDate, req.EndDate) {
		return fmt.Errorf("%w: interval must not exceed %d days", ErrInvalidInput, domain.MaxStayDays)
	}

	if req.Rooms < 1 || req.Rooms > totalRooms {
		return fmt.Errorf("%w: rooms must be between 1 and %d", ErrInvalidInput, totalRooms)
	}

	return nil
}
