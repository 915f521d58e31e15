package bookings

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// newValidator создает валидатор с правилами для перечислений домена
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("program_type", func(fl validator.FieldLevel) bool {
		return domain.ProgramType(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("booking_status", func(fl validator.FieldLevel) bool {
		return domain.BookingStatus(fl.Field().String()).IsValid()
	})

	return v
}

// validateDraft проверяет значения полей брони до любого обращения к хранилищу
func (s *Service) validateDraft(draft domain.BookingDraft) error {
	if err := s.validate.Struct(draft); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return fmt.Errorf("%w: %s", ErrInvalidInput, describeFieldError(fieldErrs[0]))
		}
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if draft.NumberOfRooms > s.totalRooms {
		return fmt.Errorf("%w: number of rooms must be between %d and %d",
			ErrInvalidInput, domain.MinRoomsPerBooking, s.totalRooms)
	}

	if !draft.EndDate.After(draft.StartDate) {
		if domain.DayKey(draft.StartDate) == domain.DayKey(draft.EndDate.In(draft.StartDate.Location())) {
			return fmt.Errorf("%w: check-out time must be after check-in time for same-day bookings", ErrInvalidInput)
		}
		return fmt.Errorf("%w: check-out date must be after check-in date", ErrInvalidInput)
	}

	if domain.ExceedsMaxStay(draft.StartDate, draft.EndDate) {
		return fmt.Errorf("%w: booking must not exceed %d days", ErrInvalidInput, domain.MaxStayDays)
	}

	return nil
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Field() {
	case "ProgramTitle":
		if fe.Tag() == "max" {
			return fmt.Sprintf("program title must be at most %d characters", domain.MaxProgramTitleLength)
		}
		return "program title is required"
	case "ProgramType":
		return "program type must be one of the known program types"
	case "NumberOfRooms":
		return "number of rooms must be at least 1"
	case "Status":
		return "booking status must be pencil or confirmed"
	case "StartDate":
		return "check-in date is required"
	case "EndDate":
		return "check-out date is required"
	}
	return fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag())
}

func draftFromBooking(b *domain.Booking) domain.BookingDraft {
	return domain.BookingDraft{
		ProgramTitle:  b.ProgramTitle,
		ProgramType:   b.ProgramType,
		NumberOfRooms: b.NumberOfRooms,
		Status:        b.Status,
		StartDate:     b.StartDate,
		EndDate:       b.EndDate,
	}
}
