package domain

// Inventory
const (
	// DefaultTotalRooms количество одинаковых номеров в общем пуле
	DefaultTotalRooms  = 133
	MinRoomsPerBooking = 1
)

// Business validation constants
const (
	MaxProgramTitleLength = 200

	// MaxStayDays наибольшая длина интервала брони или проверки, в сутках
	MaxStayDays = 3 * 366
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Время заезда и выезда по умолчанию
const (
	DefaultCheckInTime  = "14:00"
	DefaultCheckOutTime = "11:00"
)
