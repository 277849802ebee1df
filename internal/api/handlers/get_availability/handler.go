package get_availability

import (
	"net/http"

	"github.com/m04kA/SMC-PetCareService/internal/api/handlers"
)

const (
	msgInvalidCaretakerID = "некорректный ID ситтера"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/caretakers/{caretakerId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	caretakerID, err := handlers.PathInt64(r, "caretakerId")
	if err != nil {
		h.logger.Warn("GET /caretakers/{id}/availability - Invalid caretaker ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCaretakerID)
		return
	}

	// Если ситтер ещё не настраивал доступность, сервис вернёт значения по умолчанию
	result, err := h.service.Get(r.Context(), caretakerID)
	if err != nil {
		h.logger.Error("GET /caretakers/{id}/availability - Failed to get availability: caretaker_id=%d, error=%v",
			caretakerID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /caretakers/{id}/availability - Availability retrieved: caretaker_id=%d, max_pets=%d",
		caretakerID, result.MaxPets)
	handlers.RespondJSON(w, http.StatusOK, result)
}
