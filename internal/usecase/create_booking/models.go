package create_booking

import (
	"time"
)

// Request модель запроса на создание бронирования
type Request struct {
	ProgramTitle  string
	ProgramType   string
	NumberOfRooms int
	Status        string    // pencil | confirmed
	StartDate     time.Time // заезд (дата + время)
	EndDate       time.Time // выезд (дата + время)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            string
	ProgramTitle  string
	ProgramType   string
	NumberOfRooms int
	Status        string
	StartDate     time.Time
	EndDate       time.Time
	CreatedAt     time.Time

	// Подтверждённая бронь вытесняет пересекающиеся pencil-брони
	EvictedBookingIDs []string
}
