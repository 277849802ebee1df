package create_payment

import (
	"time"

	createPayment "github.com/m04kA/SMC-PetCareService/internal/usecase/create_payment"
)

// CreatePaymentRequest HTTP request model
type CreatePaymentRequest struct {
	BookingID     int64    `json:"bookingId"`
	Amount        *float64 `json:"amount,omitempty"`        // по умолчанию цена бронирования
	PaymentMethod string   `json:"paymentMethod,omitempty"` // card | bank_transfer
}

// PaymentResponse HTTP response model
type PaymentResponse struct {
	ID              int64   `json:"id"`
	BookingID       int64   `json:"bookingId"`
	OwnerID         int64   `json:"ownerId"`
	CaretakerID     int64   `json:"caretakerId"`
	Amount          float64 `json:"amount"`
	PlatformFee     float64 `json:"platformFee"`
	CaretakerPayout float64 `json:"caretakerPayout"`
	Status          string  `json:"status"`
	PaymentMethod   string  `json:"paymentMethod"`
	TransactionID   *string `json:"transactionId,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	CompletedAt     *string `json:"completedAt,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreatePaymentRequest) ToUseCaseRequest(actorID int64) *createPayment.Request {
	return &createPayment.Request{
		ActorID:   actorID,
		BookingID: r.BookingID,
		Amount:    r.Amount,
		Method:    r.PaymentMethod,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createPayment.Response) *PaymentResponse {
	out := &PaymentResponse{
		ID:              resp.ID,
		BookingID:       resp.BookingID,
		OwnerID:         resp.OwnerID,
		CaretakerID:     resp.CaretakerID,
		Amount:          resp.Amount,
		PlatformFee:     resp.PlatformFee,
		CaretakerPayout: resp.CaretakerPayout,
		Status:          resp.Status,
		PaymentMethod:   resp.Method,
		TransactionID:   resp.TransactionID,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
	if resp.CompletedAt != nil {
		completedAt := resp.CompletedAt.Format(time.RFC3339)
		out.CompletedAt = &completedAt
	}
	return out
}
