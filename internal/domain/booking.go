package domain

import (
	"time"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	// StatusPencil предварительная бронь, вытесняется подтверждённой
	StatusPencil BookingStatus = "pencil"
	// StatusConfirmed подтверждённая бронь, имеет приоритет над pencil
	StatusConfirmed BookingStatus = "confirmed"
)

// IsValid returns true for a known booking status
func (s BookingStatus) IsValid() bool {
	return s == StatusPencil || s == StatusConfirmed
}

// ProgramType категория программы, под которую бронируются номера
type ProgramType string

const (
	ProgramLeadershipDevelopment ProgramType = "Leadership Development Program"
	ProgramExecutiveTraining     ProgramType = "Executive Training"
	ProgramTeamBuilding          ProgramType = "Team Building Workshop"
	ProgramCorporateRetreat      ProgramType = "Corporate Retreat"
	ProgramConference            ProgramType = "Conference"
	ProgramOther                 ProgramType = "Other"
)

// ProgramTypes список допустимых категорий программ
var ProgramTypes = []ProgramType{
	ProgramLeadershipDevelopment,
	ProgramExecutiveTraining,
	ProgramTeamBuilding,
	ProgramCorporateRetreat,
	ProgramConference,
	ProgramOther,
}

// IsValid returns true for one of the known program types
func (p ProgramType) IsValid() bool {
	for _, t := range ProgramTypes {
		if p == t {
			return true
		}
	}
	return false
}

// Booking represents a block of rooms held for a program.
// Occupies the half-open interval [StartDate, EndDate).
type Booking struct {
	ID            string
	ProgramTitle  string
	ProgramType   ProgramType
	NumberOfRooms int
	Status        BookingStatus
	StartDate     time.Time
	EndDate       time.Time
	CreatedAt     time.Time
}

// IsPencil returns true if the booking is a provisional hold
func (b *Booking) IsPencil() bool {
	return b.Status == StatusPencil
}

// IsConfirmed returns true if the booking is a firm commitment
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// Overlaps returns true if the booking occupies any instant of [start, end)
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.EndDate.After(start) && b.StartDate.Before(end)
}

// Clone returns a copy of the booking
func (b *Booking) Clone() *Booking {
	c := *b
	return &c
}

// Apply накладывает заданные поля патча на бронь, ID и CreatedAt не меняются
func (b *Booking) Apply(patch BookingPatch) {
	if patch.ProgramTitle != nil {
		b.ProgramTitle = *patch.ProgramTitle
	}
	if patch.ProgramType != nil {
		b.ProgramType = *patch.ProgramType
	}
	if patch.NumberOfRooms != nil {
		b.NumberOfRooms = *patch.NumberOfRooms
	}
	if patch.Status != nil {
		b.Status = *patch.Status
	}
	if patch.StartDate != nil {
		b.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		b.EndDate = *patch.EndDate
	}
}

// BookingDraft данные для создания брони (ID и CreatedAt назначаются при создании)
type BookingDraft struct {
	ProgramTitle  string        `validate:"required,max=200"`
	ProgramType   ProgramType   `validate:"required,program_type"`
	NumberOfRooms int           `validate:"min=1"`
	Status        BookingStatus `validate:"required,booking_status"`
	StartDate     time.Time     `validate:"required"`
	EndDate       time.Time     `validate:"required"`
}

// BookingPatch частичное обновление брони, nil - поле не меняется
type BookingPatch struct {
	ProgramTitle  *string
	ProgramType   *ProgramType
	NumberOfRooms *int
	Status        *BookingStatus
	StartDate     *time.Time
	EndDate       *time.Time
}

// IsEmpty returns true if the patch changes nothing
func (p BookingPatch) IsEmpty() bool {
	return p.ProgramTitle == nil &&
		p.ProgramType == nil &&
		p.NumberOfRooms == nil &&
		p.Status == nil &&
		p.StartDate == nil &&
		p.EndDate == nil
}

// ChangesCapacity returns true if the patch touches fields that affect room usage
func (p BookingPatch) ChangesCapacity() bool {
	return p.NumberOfRooms != nil || p.StartDate != nil || p.EndDate != nil
}
