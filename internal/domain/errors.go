package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidDate строка не является датой в формате YYYY-MM-DD
var ErrInvalidDate = errors.New("invalid date format")

// ErrInsufficientCapacity недостаточно свободных номеров на запрошенный интервал
var ErrInsufficientCapacity = errors.New("insufficient room capacity")

// CapacityError отказ в размещении брони с фактическим количеством свободных номеров
type CapacityError struct {
	Requested int
	Available int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%v: requested %d, available %d", ErrInsufficientCapacity, e.Requested, e.Available)
}

func (e *CapacityError) Unwrap() error {
	return ErrInsufficientCapacity
}

// NewCapacityError builds a CapacityError from an availability result
func NewCapacityError(a Availability) *CapacityError {
	return &CapacityError{
		Requested: a.RequestedRooms,
		Available: a.AvailableRooms,
	}
}
