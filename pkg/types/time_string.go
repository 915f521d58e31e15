package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidTimeFormat возвращается, когда строка не является временем в формате HH:MM
var ErrInvalidTimeFormat = errors.New("invalid time string format")

// TimeString время суток в формате HH:MM (например, "14:00")
type TimeString string

// NewTimeStringFromString парсит и валидирует строку формата HH:MM
// Часы допускаются без ведущего нуля ("9:30"), результат нормализуется до "09:30"
func NewTimeStringFromString(s string) (TimeString, error) {
	hour, minute, err := parse(strings.TrimSpace(s))
	if err != nil {
		return "", err
	}
	return TimeString(fmt.Sprintf("%02d:%02d", hour, minute)), nil
}

// Validate проверяет, что значение - корректное время суток (часы 0-23, минуты 0-59)
func (t TimeString) Validate() error {
	_, _, err := parse(string(t))
	return err
}

// Hour возвращает часы (0 для некорректного значения)
func (t TimeString) Hour() int {
	h, _, _ := parse(string(t))
	return h
}

// Minute возвращает минуты (0 для некорректного значения)
func (t TimeString) Minute() int {
	_, m, _ := parse(string(t))
	return m
}

func (t TimeString) String() string {
	return string(t)
}

func parse(s string) (int, int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 || len(parts[0]) == 0 || len(parts[0]) > 2 || len(parts[1]) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("%w: hours out of range in %q", ErrInvalidTimeFormat, s)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: minutes out of range in %q", ErrInvalidTimeFormat, s)
	}

	return hour, minute, nil
}
