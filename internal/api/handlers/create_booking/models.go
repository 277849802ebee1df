package create_booking

import (
	"time"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
	createBooking "github.com/m04kA/SMC-PetCareService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	// OwnerID принимается для совместимости со старыми клиентами и игнорируется:
	// владельцем всегда становится аутентифицированный пользователь
	OwnerID     *int64    `json:"ownerId,omitempty"`
	CaretakerID int64     `json:"caretakerId"`
	ServiceID   int64     `json:"serviceId"`
	PetID       int64     `json:"petId"`
	Start       time.Time `json:"start"` // RFC3339
	End         time.Time `json:"end"`   // RFC3339
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
func (r *CreateBookingRequest) ToUseCaseRequest(ownerID int64) *createBooking.Request {
	return &createBooking.Request{
		OwnerID:     ownerID,
		CaretakerID: r.CaretakerID,
		ServiceID:   r.ServiceID,
		PetID:       r.PetID,
		Start:       r.Start,
		End:         r.End,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
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
