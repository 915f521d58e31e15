package check_availability

import (
	"time"

	checkAvailability "github.com/m04kA/SMC-RoomBookingService/internal/usecase/check_availability"
)

// DayAvailability свободные номера в один день
type DayAvailability struct {
	Date           string `json:"date"`
	AvailableRooms int    `json:"availableRooms"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Available         bool              `json:"available"`
	AvailableRooms    int               `json:"availableRooms"`
	RequestedRooms    int               `json:"requestedRooms"`
	TotalRooms        int               `json:"totalRooms"`
	StartDate         string            `json:"startDate"`
	EndDate           string            `json:"endDate"`
	DailyAvailability []DayAvailability `json:"dailyAvailability"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	daily := make([]DayAvailability, 0, len(resp.Daily))
	for _, d := range resp.Daily {
		daily = append(daily, DayAvailability{Date: d.Day, AvailableRooms: d.AvailableRooms})
	}

	return &AvailabilityResponse{
		Available:         resp.Available,
		AvailableRooms:    resp.AvailableRooms,
		RequestedRooms:    resp.RequestedRooms,
		TotalRooms:        resp.TotalRooms,
		StartDate:         resp.StartDate.Format(time.RFC3339),
		EndDate:           resp.EndDate.Format(time.RFC3339),
		DailyAvailability: daily,
	}
}
