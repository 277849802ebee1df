package update_booking_status

import (
	"time"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
	updateStatus "github.com/m04kA/SMC-PetCareService/internal/usecase/update_booking_status"
)

// StatusPatchRequest HTTP request model
type StatusPatchRequest struct {
	Status string `json:"status"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int64   `json:"id"`
	OwnerID      int64   `json:"ownerId"`
	CaretakerID  int64   `json:"caretakerId"`
	ServiceID    int64   `json:"serviceId"`
	PetID        int64   `json:"petId"`
	Start        string  `json:"start"`
	End          string  `json:"end"`
	Status       string  `json:"status"`
	TotalPrice   float64 `json:"totalPrice"`
	DurationDays int     `json:"durationDays"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *StatusPatchRequest) ToUseCaseRequest(bookingID, actorID int64) *updateStatus.Request {
	return &updateStatus.Request{
		BookingID: bookingID,
		ActorID:   actorID,
		Status:    r.Status,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateStatus.Response) *BookingResponse {
	return &BookingResponse{
		ID:           resp.ID,
		OwnerID:      resp.OwnerID,
		CaretakerID:  resp.CaretakerID,
		ServiceID:    resp.ServiceID,
		PetID:        resp.PetID,
		Start:        resp.Start.Format(time.RFC3339),
		End:          resp.End.Format(time.RFC3339),
		Status:       resp.Status,
		TotalPrice:   resp.TotalPrice,
		DurationDays: domain.DurationDays(resp.Start, resp.End),
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}
