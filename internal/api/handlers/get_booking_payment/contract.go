package get_booking_payment

import (
	"context"

	"github.com/m04kA/SMC-PetCareService/internal/service/payments/models"
)

type PaymentService interface {
	GetByBooking(ctx context.Context, bookingID, userID int64) (*models.PaymentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
