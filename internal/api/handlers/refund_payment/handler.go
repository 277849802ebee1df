package refund_payment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-PetCareService/internal/api/handlers"
	"github.com/m04kA/SMC-PetCareService/internal/api/middleware"
	"github.com/m04kA/SMC-PetCareService/internal/service/payments"
)

const (
	msgInvalidPaymentID = "некорректный ID платежа"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgNotFound         = "платёж не найден"
	msgForbidden        = "вернуть платёж может только владелец"
	msgConflict         = "статус платежа изменился, повторите запрос"
	msgInvalidState     = "можно вернуть только завершённый платёж"
)

type Handler struct {
	service PaymentService
	logger  Logger
}

func NewHandler(service PaymentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments/{paymentId}/refund
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	paymentID, err := handlers.PathInt64(r, "paymentId")
	if err != nil {
		h.logger.Warn("POST /payments/{id}/refund - Invalid payment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPaymentID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /payments/{id}/refund - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.Refund(r.Context(), paymentID, userID)
	if err != nil {
		switch {
		case errors.Is(err, payments.ErrPaymentNotFound):
			h.logger.Warn("POST /payments/{id}/refund - Payment not found: payment_id=%d", paymentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, payments.ErrAccessDenied):
			h.logger.Warn("POST /payments/{id}/refund - Access denied: payment_id=%d, user_id=%d", paymentID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, payments.ErrInvalidPaymentState):
			h.logger.Warn("POST /payments/{id}/refund - Invalid payment state: payment_id=%d", paymentID)
			handlers.RespondBadRequest(w, msgInvalidState)

		case errors.Is(err, payments.ErrConcurrentUpdate):
			h.logger.Warn("POST /payments/{id}/refund - Concurrent update: payment_id=%d", paymentID)
			handlers.RespondConflict(w, msgConflict)

		default:
			h.logger.Error("POST /payments/{id}/refund - Failed: payment_id=%d, error=%v", paymentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments/{id}/refund - Payment %s: payment_id=%d, booking_id=%d",
		result.Status, paymentID, result.BookingID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
