package get_day_summary

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// Request модель запроса сводки за день
type Request struct {
	Date time.Time // календарный день, время суток игнорируется
}

// Response загрузка номерного фонда за день
type Response = domain.DaySummary
