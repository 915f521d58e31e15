package handlers

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// ParseCheckIn разбирает дату и время заезда, пустое время - время заезда по умолчанию
func ParseCheckIn(date, tod string, loc *time.Location) (time.Time, string, error) {
	if tod == "" {
		tod = domain.DefaultCheckInTime
	}
	return ParseDateTime(date, tod, loc)
}

// ParseCheckOut разбирает дату и время выезда, пустое время - время выезда по умолчанию
func ParseCheckOut(date, tod string, loc *time.Location) (time.Time, string, error) {
	if tod == "" {
		tod = domain.DefaultCheckOutTime
	}
	return ParseDateTime(date, tod, loc)
}

// ParseDateTime собирает момент времени из даты (YYYY-MM-DD) и времени суток (HH:MM)
// Возвращает сообщение для ответа 400, если разбор не удался
func ParseDateTime(date, tod string, loc *time.Location) (time.Time, string, error) {
	t, err := domain.ParseDateTime(date, tod, loc)
	if err == nil {
		return t, "", nil
	}
	if errors.Is(err, types.ErrInvalidTimeFormat) {
		return time.Time{}, MsgInvalidTime, err
	}
	return time.Time{}, MsgInvalidDate, err
}
