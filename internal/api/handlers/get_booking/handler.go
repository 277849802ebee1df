package get_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-PetCareService/internal/api/handlers"
	"github.com/m04kA/SMC-PetCareService/internal/api/middleware"
	"github.com/m04kA/SMC-PetCareService/internal/service/bookings"
	"github.com/m04kA/SMC-PetCareService/internal/service/bookings/models"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgBookingNotFound  = "бронирование не найдено"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgNotParticipant   = "бронирование доступно только владельцу питомца и ситтеру"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	bookingID, err := handlers.PathInt64(r, "bookingId")
	if err != nil {
		h.logger.Warn("GET /bookings/{id} - Invalid booking ID: user_id=%d, error=%v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	booking, err := h.service.GetByID(r.Context(), bookingID, userID)
	switch {
	case err == nil:
	case errors.Is(err, bookings.ErrBookingNotFound):
		h.logger.Warn("GET /bookings/{id} - Booking not found: booking_id=%d", bookingID)
		handlers.RespondNotFound(w, msgBookingNotFound)
		return
	case errors.Is(err, bookings.ErrAccessDenied):
		h.logger.Warn("GET /bookings/{id} - User is neither owner nor caretaker: booking_id=%d, user_id=%d",
			bookingID, userID)
		handlers.RespondForbidden(w, msgNotParticipant)
		return
	default:
		h.logger.Error("GET /bookings/{id} - Failed to load booking: booking_id=%d, error=%v", bookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings/{id} - Booking returned: booking_id=%d, role=%s, status=%s",
		bookingID, participantRole(booking, userID), booking.Status)
	handlers.RespondJSON(w, http.StatusOK, booking)
}

// participantRole возвращает роль пользователя в бронировании для логов
func participantRole(b *models.BookingResponse, userID int64) string {
	if b.CaretakerID == userID {
		return "caretaker"
	}
	return "owner"
}
