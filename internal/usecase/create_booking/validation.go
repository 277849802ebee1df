package create_booking

import (
	"fmt"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
)

// validateRequest валидирует входные данные запроса до любых обращений к хранилищу
func validateRequest(req *Request) error {
	if req.OwnerID <= 0 {
		return fmt.Errorf("%w: ownerID must be positive", ErrInvalidInput)
	}

	if req.CaretakerID <= 0 {
		return fmt.Errorf("%w: caretakerID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.PetID <= 0 {
		return fmt.Errorf("%w: petID must be positive", ErrInvalidInput)
	}

	if req.Start.IsZero() || req.End.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrInvalidInput)
	}

	if _, err := domain.NewInterval(req.Start, req.End); err != nil {
		return fmt.Errorf("%w: end must be after start", ErrInvalidInput)
	}

	if days := domain.DurationDays(req.Start, req.End); days > domain.MaxBookingDays {
		return fmt.Errorf("%w: booking spans %d days, at most %d allowed", ErrInvalidInput, days, domain.MaxBookingDays)
	}

	return nil
}
