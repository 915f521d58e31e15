package booking

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// record сериализованная форма брони (даты в RFC3339Nano)
type record struct {
	ID            string    `json:"id"`
	ProgramTitle  string    `json:"programTitle"`
	ProgramType   string    `json:"programType"`
	NumberOfRooms int       `json:"numberOfRooms"`
	BookingStatus string    `json:"bookingStatus"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	CreatedAt     time.Time `json:"createdAt"`
}

func toRecord(b *domain.Booking) record {
	return record{
		ID:            b.ID,
		ProgramTitle:  b.ProgramTitle,
		ProgramType:   string(b.ProgramType),
		NumberOfRooms: b.NumberOfRooms,
		BookingStatus: string(b.Status),
		StartDate:     b.StartDate,
		EndDate:       b.EndDate,
		CreatedAt:     b.CreatedAt,
	}
}

func (r record) toDomain() *domain.Booking {
	return &domain.Booking{
		ID:            r.ID,
		ProgramTitle:  r.ProgramTitle,
		ProgramType:   domain.ProgramType(r.ProgramType),
		NumberOfRooms: r.NumberOfRooms,
		Status:        domain.BookingStatus(r.BookingStatus),
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		CreatedAt:     r.CreatedAt,
	}
}

// encodeBookings сериализует весь набор бронирований в JSON-массив
func encodeBookings(bookings []*domain.Booking) ([]byte, error) {
	records := make([]record, 0, len(bookings))
	for _, b := range bookings {
		records = append(records, toRecord(b))
	}

	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return data, nil
}

// decodeBookings восстанавливает набор бронирований из JSON-массива
func decodeBookings(data []byte) ([]*domain.Booking, error) {
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	bookings := make([]*domain.Booking, 0, len(records))
	for _, r := range records {
		bookings = append(bookings, r.toDomain())
	}
	return bookings, nil
}
