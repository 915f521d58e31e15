package domain

import "time"

// DailyAvailability свободные номера в один календарный день
type DailyAvailability struct {
	Day            string // YYYY-MM-DD
	AvailableRooms int
}

// Availability результат проверки наличия номеров на интервал
type Availability struct {
	Available      bool
	AvailableRooms int // минимум свободных номеров по всем дням интервала
	RequestedRooms int
	TotalRooms     int
	Daily          []DailyAvailability // по возрастанию дня
	StartDate      time.Time
	EndDate        time.Time
}

// DaySummary загрузка номерного фонда за один день
type DaySummary struct {
	Date           string
	TotalRooms     int
	AvailableRooms int
	BookedRooms    int
}

// OccupancyRate доля занятых номеров в процентах (0-100, может превышать 100 при перебронировании)
func (s DaySummary) OccupancyRate() float64 {
	if s.TotalRooms == 0 {
		return 0
	}
	return float64(s.BookedRooms) * 100 / float64(s.TotalRooms)
}
