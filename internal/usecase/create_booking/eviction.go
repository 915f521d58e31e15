package create_booking

import (
	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// splitEvictions делит набор на брони, которые остаются, и pencil-брони,
// пересекающиеся с подтверждённым кандидатом. Сравниваются полные интервалы броней
func splitEvictions(bookings []*domain.Booking, candidate *domain.Booking) (kept, evicted []*domain.Booking) {
	kept = make([]*domain.Booking, 0, len(bookings)+1)

	for _, b := range bookings {
		if b.IsPencil() && b.Overlaps(candidate.StartDate, candidate.EndDate) {
			evicted = append(evicted, b)
			continue
		}
		kept = append(kept, b)
	}

	return kept, evicted
}

func bookingIDs(bookings []*domain.Booking) []string {
	ids := make([]string, 0, len(bookings))
	for _, b := range bookings {
		ids = append(ids, b.ID)
	}
	return ids
}
