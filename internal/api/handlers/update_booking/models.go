package update_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	updateBooking "github.com/m04kA/SMC-RoomBookingService/internal/usecase/update_booking"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// UpdateBookingRequest HTTP request model, отсутствующие поля не меняются
// Дата без времени сохраняет время суток брони, время без даты применяется к дате брони
type UpdateBookingRequest struct {
	ProgramTitle  *string `json:"programTitle,omitempty"`
	ProgramType   *string `json:"programType,omitempty"`
	NumberOfRooms *int    `json:"numberOfRooms,omitempty"`
	BookingStatus *string `json:"bookingStatus,omitempty"`
	CheckInDate   *string `json:"checkInDate,omitempty"`
	CheckInTime   *string `json:"checkInTime,omitempty"`
	CheckOutDate  *string `json:"checkOutDate,omitempty"`
	CheckOutTime  *string `json:"checkOutTime,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Вторым значением возвращается сообщение для ответа 400
func (r *UpdateBookingRequest) ToUseCaseRequest(id string, loc *time.Location) (*updateBooking.Request, string, error) {
	req := &updateBooking.Request{
		ID:            id,
		ProgramTitle:  r.ProgramTitle,
		ProgramType:   r.ProgramType,
		NumberOfRooms: r.NumberOfRooms,
		Status:        r.BookingStatus,
	}

	var err error
	if req.CheckInDate, err = parseDay(r.CheckInDate, loc); err != nil {
		return nil, handlers.MsgInvalidDate, err
	}
	if req.CheckOutDate, err = parseDay(r.CheckOutDate, loc); err != nil {
		return nil, handlers.MsgInvalidDate, err
	}
	if req.CheckInTime, err = parseTime(r.CheckInTime); err != nil {
		return nil, handlers.MsgInvalidTime, err
	}
	if req.CheckOutTime, err = parseTime(r.CheckOutTime); err != nil {
		return nil, handlers.MsgInvalidTime, err
	}

	return req, "", nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateBooking.Response) handlers.BookingResponse {
	return handlers.NewBookingResponse(
		resp.ID,
		resp.ProgramTitle,
		resp.ProgramType,
		resp.NumberOfRooms,
		resp.Status,
		resp.StartDate,
		resp.EndDate,
		resp.CreatedAt,
	)
}

func parseDay(s *string, loc *time.Location) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	day, err := domain.ParseDay(*s, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", domain.ErrInvalidDate, *s, err)
	}
	return &day, nil
}

func parseTime(s *string) (*types.TimeString, error) {
	if s == nil {
		return nil, nil
	}
	ts, err := types.NewTimeStringFromString(*s)
	if err != nil {
		return nil, err
	}
	return &ts, nil
}
