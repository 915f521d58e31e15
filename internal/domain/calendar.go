package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// DayKey возвращает календарный день t в формате YYYY-MM-DD (в локации t)
func DayKey(t time.Time) string {
	return t.Format(DateFormat)
}

// StartOfDay возвращает полночь календарного дня t
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay возвращает последнюю наносекунду календарного дня t
func EndOfDay(t time.Time) time.Time {
	return NextDay(t).Add(-time.Nanosecond)
}

// NextDay возвращает полночь следующего календарного дня
func NextDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, t.Location())
}

// DaySequence возвращает ключи всех дней от дня start до дня end включительно.
// end приводится к локации start. Если end раньше start - пустой результат.
func DaySequence(start, end time.Time) []string {
	last := DayKey(end.In(start.Location()))

	var days []string
	for d := StartOfDay(start); ; d = NextDay(d) {
		key := DayKey(d)
		if key > last {
			break
		}
		days = append(days, key)
	}
	return days
}

// ExceedsMaxStay возвращает true, если интервал длиннее MaxStayDays суток
func ExceedsMaxStay(start, end time.Time) bool {
	return end.Sub(start) > MaxStayDays*24*time.Hour
}

// ParseDay парсит дату YYYY-MM-DD как полночь в указанной локации
func ParseDay(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateFormat, s, loc)
}

// CombineDateAndTime возвращает момент времени: календарный день date + время суток tod
func CombineDateAndTime(date time.Time, tod types.TimeString) (time.Time, error) {
	if err := tod.Validate(); err != nil {
		return time.Time{}, err
	}
	y, m, d := date.Date()
	return time.Date(y, m, d, tod.Hour(), tod.Minute(), 0, 0, date.Location()), nil
}

// ParseDateTime собирает момент времени из строк "YYYY-MM-DD" и "HH:MM"
func ParseDateTime(date, tod string, loc *time.Location) (time.Time, error) {
	day, err := ParseDay(date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrInvalidDate, date, err)
	}

	ts, err := types.NewTimeStringFromString(tod)
	if err != nil {
		return time.Time{}, err
	}

	return CombineDateAndTime(day, ts)
}
