package create_payment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-PetCareService/internal/api/handlers"
	"github.com/m04kA/SMC-PetCareService/internal/api/middleware"
	createPayment "github.com/m04kA/SMC-PetCareService/internal/usecase/create_payment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidPayment     = "некорректные данные платежа"
	msgBookingNotFound    = "бронирование не найдено"
	msgForbidden          = "оплатить бронирование может только владелец"
	msgNotAccepted        = "оплатить можно только принятое бронирование"
	msgAlreadyExists      = "платёж для этого бронирования уже существует"
	msgConcurrentUpdate   = "бронирование изменено параллельным запросом, повторите попытку"
)

type Handler struct {
	useCase CreatePaymentUseCase
	logger  Logger
}

func NewHandler(useCase CreatePaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /payments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreatePaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, createPayment.ErrInvalidInput):
			h.logger.Warn("POST /payments - Invalid payment data: booking_id=%d, error=%v", req.BookingID, err)
			handlers.RespondBadRequest(w, msgInvalidPayment)

		case errors.Is(err, createPayment.ErrBookingNotFound):
			h.logger.Warn("POST /payments - Booking not found: booking_id=%d", req.BookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, createPayment.ErrAccessDenied):
			h.logger.Warn("POST /payments - Access denied: booking_id=%d, user_id=%d", req.BookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, createPayment.ErrBookingNotAccepted):
			h.logger.Warn("POST /payments - Booking not accepted: booking_id=%d", req.BookingID)
			handlers.RespondBadRequest(w, msgNotAccepted)

		case errors.Is(err, createPayment.ErrPaymentAlreadyExists):
			h.logger.Warn("POST /payments - Payment already exists: booking_id=%d", req.BookingID)
			handlers.RespondConflict(w, msgAlreadyExists)

		case errors.Is(err, createPayment.ErrConcurrentUpdate):
			h.logger.Warn("POST /payments - Concurrent update: booking_id=%d", req.BookingID)
			handlers.RespondConflict(w, msgConcurrentUpdate)

		default:
			h.logger.Error("POST /payments - Failed to create payment: booking_id=%d, error=%v", req.BookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments - Payment created: payment_id=%d, booking_id=%d, amount=%.2f",
		result.ID, result.BookingID, result.Amount)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
