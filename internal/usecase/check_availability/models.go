package check_availability

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// Request модель запроса на проверку наличия номеров
type Request struct {
	StartDate  time.Time // заезд (дата + время)
	EndDate    time.Time // выезд (дата + время)
	Rooms      int
	ExcludeIDs []string // брони, которые не учитываются (правка существующей брони)
}

// Response результат проверки по дням интервала
type Response = domain.Availability
