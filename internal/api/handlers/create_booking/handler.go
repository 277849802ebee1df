package create_booking

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-PetCareService/internal/api/handlers"
	"github.com/m04kA/SMC-PetCareService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-PetCareService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody     = "некорректное тело запроса, start и end ожидаются в формате RFC3339"
	msgMissingUserID          = "отсутствует ID пользователя"
	msgInvalidBookingData     = "некорректные данные бронирования"
	msgCaretakerNotFound      = "ситтер не найден"
	msgInvalidService         = "услуга недействительна для этого ситтера"
	msgPetNotOwned            = "нельзя бронировать с питомцем, который вам не принадлежит"
	msgCaretakerUnavailableOn = "ситтер недоступен %s"
	msgCapacityExceeded       = "нет свободных мест на выбранные даты"
	msgConcurrentUpdate       = "бронирование изменено параллельным запросом, повторите попытку"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(ownerID))
	if err != nil {
		var unavailable *createBooking.UnavailableError

		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid booking data: owner_id=%d, error=%v", ownerID, err)
			handlers.RespondBadRequest(w, msgInvalidBookingData)

		case errors.Is(err, createBooking.ErrCaretakerNotFound):
			h.logger.Warn("POST /bookings - Caretaker not found: caretaker_id=%d", req.CaretakerID)
			handlers.RespondNotFound(w, msgCaretakerNotFound)

		case errors.Is(err, createBooking.ErrInvalidServiceReference):
			h.logger.Warn("POST /bookings - Invalid service: caretaker_id=%d, service_id=%d", req.CaretakerID, req.ServiceID)
			handlers.RespondBadRequest(w, msgInvalidService)

		case errors.Is(err, createBooking.ErrPetNotOwned):
			h.logger.Warn("POST /bookings - Pet not owned: owner_id=%d, pet_id=%d", ownerID, req.PetID)
			handlers.RespondForbidden(w, msgPetNotOwned)

		case errors.As(err, &unavailable):
			h.logger.Warn("POST /bookings - Caretaker unavailable: caretaker_id=%d, day=%s", req.CaretakerID, unavailable.Day)
			handlers.RespondBadRequest(w, fmt.Sprintf(msgCaretakerUnavailableOn, unavailable.Day))

		case errors.Is(err, createBooking.ErrCapacityExceeded):
			h.logger.Warn("POST /bookings - Capacity exceeded: caretaker_id=%d", req.CaretakerID)
			handlers.RespondConflict(w, msgCapacityExceeded)

		case errors.Is(err, createBooking.ErrConcurrentUpdate):
			h.logger.Warn("POST /bookings - Concurrent update: caretaker_id=%d", req.CaretakerID)
			handlers.RespondConflict(w, msgConcurrentUpdate)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: owner_id=%d, caretaker_id=%d, error=%v",
				ownerID, req.CaretakerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, owner_id=%d, caretaker_id=%d, days=%d",
		result.ID, ownerID, result.CaretakerID, response.DurationDays)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
