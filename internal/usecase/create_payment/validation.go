package create_payment

import (
	"fmt"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
)

// validateRequest валидирует запрос и разбирает способ оплаты
func validateRequest(req *Request) (domain.PaymentMethod, error) {
	if req.ActorID <= 0 {
		return "", fmt.Errorf("%w: actorID must be positive", ErrInvalidInput)
	}

	if req.BookingID <= 0 {
		return "", fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.Amount != nil && (*req.Amount <= 0 || *req.Amount > domain.MaxPaymentAmount) {
		return "", fmt.Errorf("%w: amount must be in (0, %.0f]", ErrInvalidInput, domain.MaxPaymentAmount)
	}

	method, err := domain.ParsePaymentMethod(req.Method)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return method, nil
}
