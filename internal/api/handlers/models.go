package handlers

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// Общие сообщения для ответов
const (
	MsgInsufficientCapacity = "недостаточно свободных номеров на выбранные даты"
	MsgConcurrentUpdate     = "данные были изменены параллельным запросом, повторите попытку"
	MsgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	MsgInvalidTime          = "некорректный формат времени, ожидается HH:MM"
	MsgInvalidRequestBody   = "некорректное тело запроса"
	MsgBookingNotFound      = "бронирование не найдено"
	MsgMissingBookingID     = "не указан ID бронирования"
	MsgInvalidBookingData   = "некорректные данные бронирования"
)

// BookingResponse HTTP модель бронирования
type BookingResponse struct {
	ID            string `json:"id"`
	ProgramTitle  string `json:"programTitle"`
	ProgramType   string `json:"programType"`
	NumberOfRooms int    `json:"numberOfRooms"`
	BookingStatus string `json:"bookingStatus"`
	StartDate     string `json:"startDate"` // RFC 3339
	EndDate       string `json:"endDate"`   // RFC 3339
	CreatedAt     string `json:"createdAt"` // RFC 3339
}

// NewBookingResponse собирает HTTP модель из полей брони
func NewBookingResponse(
	id, title, programType string,
	rooms int,
	status string,
	start, end, createdAt time.Time,
) BookingResponse {
	return BookingResponse{
		ID:            id,
		ProgramTitle:  title,
		ProgramType:   programType,
		NumberOfRooms: rooms,
		BookingStatus: status,
		StartDate:     start.Format(time.RFC3339),
		EndDate:       end.Format(time.RFC3339),
		CreatedAt:     createdAt.Format(time.RFC3339),
	}
}

// FromDomainBooking конвертирует domain модель в HTTP модель
func FromDomainBooking(b *domain.Booking) BookingResponse {
	return NewBookingResponse(
		b.ID,
		b.ProgramTitle,
		string(b.ProgramType),
		b.NumberOfRooms,
		string(b.Status),
		b.StartDate,
		b.EndDate,
		b.CreatedAt,
	)
}
