package get_caretaker_calendar

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CaretakerID <= 0 {
		return fmt.Errorf("%w: caretakerID must be positive", ErrInvalidInput)
	}

	if req.From.IsZero() || req.To.IsZero() {
		return fmt.Errorf("%w: from and to are required", ErrInvalidInput)
	}

	if req.To.Before(req.From) {
		return fmt.Errorf("%w: to must not be before from", ErrInvalidInput)
	}

	return nil
}

// validatePeriod проверяет, что период не в прошлом и не длиннее MaxCalendarDays
func validatePeriod(from, to, now time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if from.Before(today) {
		return ErrDateInPast
	}

	days := int(to.Sub(from).Hours()/24) + 1
	if days > domain.MaxCalendarDays {
		return fmt.Errorf("%w: at most %d days, got %d", ErrRangeTooLong, domain.MaxCalendarDays, days)
	}

	return nil
}
