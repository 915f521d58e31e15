package get_day_summary

import (
	"math"

	getDaySummary "github.com/m04kA/SMC-RoomBookingService/internal/usecase/get_day_summary"
)

// DaySummaryResponse HTTP response model
type DaySummaryResponse struct {
	Date             string  `json:"date"`
	TotalRooms       int     `json:"totalRooms"`
	AvailableRooms   int     `json:"availableRooms"`
	BookedRooms      int     `json:"bookedRooms"`
	OccupancyRate    float64 `json:"occupancyRate"`    // проценты
	AvailabilityRate float64 `json:"availabilityRate"` // проценты
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDaySummary.Response) *DaySummaryResponse {
	occupancy := roundRate(resp.OccupancyRate())

	return &DaySummaryResponse{
		Date:             resp.Date,
		TotalRooms:       resp.TotalRooms,
		AvailableRooms:   resp.AvailableRooms,
		BookedRooms:      resp.BookedRooms,
		OccupancyRate:    occupancy,
		AvailabilityRate: roundRate(100 - resp.OccupancyRate()),
	}
}

// roundRate округляет процент до одного знака
func roundRate(v float64) float64 {
	return math.Round(v*10) / 10
}
