package update_booking_status

import (
	"fmt"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
)

// validateRequest валидирует запрос и разбирает целевой статус
func validateRequest(req *Request) (domain.BookingStatus, error) {
	if req.BookingID <= 0 {
		return "", fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.ActorID <= 0 {
		return "", fmt.Errorf("%w: actorID must be positive", ErrInvalidInput)
	}

	status, err := domain.ParseBookingStatus(req.Status)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return status, nil
}
