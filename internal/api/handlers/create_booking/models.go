package create_booking

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-RoomBookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ProgramTitle  string `json:"programTitle"`
	ProgramType   string `json:"programType"`
	NumberOfRooms int    `json:"numberOfRooms"`
	BookingStatus string `json:"bookingStatus"` // pencil | confirmed
	CheckInDate   string `json:"checkInDate"`   // "2025-10-15"
	CheckInTime   string `json:"checkInTime"`   // "14:00", по умолчанию время заезда
	CheckOutDate  string `json:"checkOutDate"`  // "2025-10-17"
	CheckOutTime  string `json:"checkOutTime"`  // "11:00", по умолчанию время выезда
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	handlers.BookingResponse
	EvictedBookingIDs []string `json:"evictedBookingIds"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Вторым значением возвращается сообщение для ответа 400
func (r *CreateBookingRequest) ToUseCaseRequest(loc *time.Location) (*createBooking.Request, string, error) {
	start, msg, err := handlers.ParseCheckIn(r.CheckInDate, r.CheckInTime, loc)
	if err != nil {
		return nil, msg, err
	}

	end, msg, err := handlers.ParseCheckOut(r.CheckOutDate, r.CheckOutTime, loc)
	if err != nil {
		return nil, msg, err
	}

	return &createBooking.Request{
		ProgramTitle:  r.ProgramTitle,
		ProgramType:   r.ProgramType,
		NumberOfRooms: r.NumberOfRooms,
		Status:        r.BookingStatus,
		StartDate:     start,
		EndDate:       end,
	}, "", nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	evicted := resp.EvictedBookingIDs
	if evicted == nil {
		evicted = []string{}
	}

	return &CreateBookingResponse{
		BookingResponse: handlers.NewBookingResponse(
			resp.ID,
			resp.ProgramTitle,
			resp.ProgramType,
			resp.NumberOfRooms,
			resp.Status,
			resp.StartDate,
			resp.EndDate,
			resp.CreatedAt,
		),
		EvictedBookingIDs: evicted,
	}
}
