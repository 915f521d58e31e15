package availability

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// Calculator считает свободные номера по календарным дням для общего пула из totalRooms номеров
type Calculator struct {
	totalRooms int
	location   *time.Location
}

// NewCalculator создает калькулятор. Календарные дни считаются в location (nil - time.Local)
func NewCalculator(totalRooms int, location *time.Location) *Calculator {
	if location == nil {
		location = time.Local
	}
	return &Calculator{
		totalRooms: totalRooms,
		location:   location,
	}
}

// TotalRooms returns the size of the room pool
func (c *Calculator) TotalRooms() int {
	return c.totalRooms
}

// Location returns the calendar used for day keys
func (c *Calculator) Location() *time.Location {
	return c.location
}

// Compute вычисляет наличие rooms номеров на интервале [start, end) с учётом bookings.
// Вызывающий гарантирует start < end и rooms >= 1.
func (c *Calculator) Compute(start, end time.Time, rooms int, bookings []*domain.Booking) domain.Availability {
	start = start.In(c.location)
	end = end.In(c.location)

	// Шаг 1: последовательность дней интервала, занято 0 в каждом дне
	days := domain.DaySequence(start, end)
	booked := make(map[string]int, len(days))
	for _, day := range days {
		booked[day] = 0
	}

	firstDay, lastDay := "", ""
	if len(days) > 0 {
		firstDay, lastDay = days[0], days[len(days)-1]
	}

	// Шаг 2: каждая пересекающаяся бронь занимает свои номера в днях,
	// которые она затрагивает внутри интервала
	for _, b := range bookings {
		if !Overlaps(b.StartDate, b.EndDate, start, end) {
			continue
		}

		from := domain.DayKey(b.StartDate.In(c.location))
		if from < firstDay {
			from = firstDay
		}
		to := domain.DayKey(b.EndDate.In(c.location))
		if to > lastDay {
			to = lastDay
		}

		for _, day := range days {
			if day >= from && day <= to {
				booked[day] += b.NumberOfRooms
			}
		}
	}

	// Шаг 3: свободно = всего - занято, итог - минимум по дням
	daily := make([]domain.DailyAvailability, 0, len(days))
	minAvailable := c.totalRooms
	for i, day := range days {
		free := c.totalRooms - booked[day]
		daily = append(daily, domain.DailyAvailability{Day: day, AvailableRooms: free})
		if i == 0 || free < minAvailable {
			minAvailable = free
		}
	}

	return domain.Availability{
		Available:      minAvailable >= rooms,
		AvailableRooms: minAvailable,
		RequestedRooms: rooms,
		TotalRooms:     c.totalRooms,
		Daily:          daily,
		StartDate:      start,
		EndDate:        end,
	}
}

// ComputeExcluding как Compute, но без броней с идентификаторами из excludeIDs
func (c *Calculator) ComputeExcluding(
	start, end time.Time,
	rooms int,
	bookings []*domain.Booking,
	excludeIDs []string,
) domain.Availability {
	return c.Compute(start, end, rooms, Exclude(bookings, excludeIDs))
}

// Exclude возвращает брони без указанных идентификаторов
func Exclude(bookings []*domain.Booking, ids []string) []*domain.Booking {
	if len(ids) == 0 {
		return bookings
	}

	skip := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		skip[id] = struct{}{}
	}

	result := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if _, ok := skip[b.ID]; ok {
			continue
		}
		result = append(result, b)
	}
	return result
}

// Overlaps проверяет пересечение полуоткрытых интервалов [aStart, aEnd) и [bStart, bEnd).
// Интервал, заканчивающийся ровно в начале другого, не пересекается с ним.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aEnd.After(bStart) && aStart.Before(bEnd)
}
