package get_caretaker_bookings

import (
	"context"

	"github.com/m04kA/SMC-PetCareService/internal/service/bookings/models"
)

type BookingService interface {
	GetCaretakerBookings(ctx context.Context, req *models.GetCaretakerBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
