package update_booking

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// Request модель запроса на правку бронирования, nil - поле не меняется
// Дата и время суток заезда/выезда меняются независимо: незаданная часть берётся из брони
type Request struct {
	ID            string
	ProgramTitle  *string
	ProgramType   *string
	NumberOfRooms *int
	Status        *string
	CheckInDate   *time.Time // календарный день, время суток игнорируется
	CheckInTime   *types.TimeString
	CheckOutDate  *time.Time // календарный день, время суток игнорируется
	CheckOutTime  *types.TimeString
}

// IsEmpty возвращает true, если запрос ничего не меняет
func (r *Request) IsEmpty() bool {
	return r.ProgramTitle == nil &&
		r.ProgramType == nil &&
		r.NumberOfRooms == nil &&
		r.Status == nil &&
		r.CheckInDate == nil &&
		r.CheckInTime == nil &&
		r.CheckOutDate == nil &&
		r.CheckOutTime == nil
}

// Response модель ответа с обновлённым бронированием
type Response struct {
	ID            string
	ProgramTitle  string
	ProgramType   string
	NumberOfRooms int
	Status        string
	StartDate     time.Time
	EndDate       time.Time
	CreatedAt     time.Time
}
