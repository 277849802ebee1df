package get_user_payments

import (
	"context"

	"github.com/m04kA/SMC-PetCareService/internal/service/payments/models"
)

type PaymentService interface {
	GetUserPayments(ctx context.Context, userID int64) (*models.PaymentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
