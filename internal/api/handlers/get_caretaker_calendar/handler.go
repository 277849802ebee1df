package get_caretaker_calendar

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-PetCareService/internal/api/handlers"
	getCalendar "github.com/m04kA/SMC-PetCareService/internal/usecase/get_caretaker_calendar"
)

const (
	msgInvalidCaretakerID = "некорректный ID ситтера"
	msgMissingPeriod      = "параметры from и to обязательны"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidPeriod      = "некорректный период"
	msgDateInPast         = "период не может начинаться в прошлом"
	msgRangeTooLong       = "слишком длинный период"
)

type Handler struct {
	useCase GetCaretakerCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCaretakerCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/caretakers/{caretakerId}/calendar
// Query params: from, to (required, YYYY-MM-DD, включительно)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	caretakerID, err := handlers.PathInt64(r, "caretakerId")
	if err != nil {
		h.logger.Warn("GET /caretakers/{id}/calendar - Invalid caretaker ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCaretakerID)
		return
	}

	fromStr := r.URL.Query().Get("from")
	toStr := r.URL.Query().Get("to")
	if fromStr == "" || toStr == "" {
		h.logger.Warn("GET /caretakers/{id}/calendar - Missing period: caretaker_id=%d", caretakerID)
		handlers.RespondBadRequest(w, msgMissingPeriod)
		return
	}

	useCaseReq, err := ToUseCaseRequest(caretakerID, fromStr, toStr)
	if err != nil {
		h.logger.Warn("GET /caretakers/{id}/calendar - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrInvalidInput):
			h.logger.Warn("GET /caretakers/{id}/calendar - Invalid period: caretaker_id=%d, error=%v", caretakerID, err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		case errors.Is(err, getCalendar.ErrDateInPast):
			h.logger.Warn("GET /caretakers/{id}/calendar - Period in the past: caretaker_id=%d, from=%s", caretakerID, fromStr)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getCalendar.ErrRangeTooLong):
			h.logger.Warn("GET /caretakers/{id}/calendar - Period too long: caretaker_id=%d, from=%s, to=%s",
				caretakerID, fromStr, toStr)
			handlers.RespondBadRequest(w, msgRangeTooLong)

		default:
			h.logger.Error("GET /caretakers/{id}/calendar - Failed to build calendar: caretaker_id=%d, error=%v",
				caretakerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /caretakers/{id}/calendar - Calendar retrieved: caretaker_id=%d, days=%d",
		caretakerID, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
