package models

import (
	"time"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
)

// PaymentResponse ответ с данными платежа
type PaymentResponse struct {
	ID              int64      `json:"id"`
	BookingID       int64      `json:"bookingId"`
	OwnerID         int64      `json:"ownerId"`
	CaretakerID     int64      `json:"caretakerId"`
	Amount          float64    `json:"amount"`
	PlatformFee     float64    `json:"platformFee"`
	CaretakerPayout float64    `json:"caretakerPayout"`
	Status          string     `json:"status"`
	PaymentMethod   string     `json:"paymentMethod"`
	TransactionID   *string    `json:"transactionId,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	CompletedAt     *time.Time `json:"completedAt,omitempty"`
	RefundedAt      *time.Time `json:"refundedAt,omitempty"`
}

// PaymentListResponse ответ со списком платежей
type PaymentListResponse struct {
	Payments []PaymentResponse `json:"payments"`
}

// FromDomainPayment конвертирует domain модель в DTO
func FromDomainPayment(p *domain.Payment) *PaymentResponse {
	if p == nil {
		return nil
	}

	return &PaymentResponse{
		ID:              p.ID,
		BookingID:       p.BookingID,
		OwnerID:         p.OwnerID,
		CaretakerID:     p.CaretakerID,
		Amount:          p.Amount,
		PlatformFee:     p.PlatformFee,
		CaretakerPayout: p.CaretakerPayout,
		Status:          string(p.Status),
		PaymentMethod:   string(p.Method),
		TransactionID:   p.TransactionID,
		CreatedAt:       p.CreatedAt,
		CompletedAt:     p.CompletedAt,
		RefundedAt:      p.RefundedAt,
	}
}

// FromDomainPaymentList конвертирует список domain моделей в DTO
func FromDomainPaymentList(payments []*domain.Payment) *PaymentListResponse {
	resp := &PaymentListResponse{
		Payments: make([]PaymentResponse, 0, len(payments)),
	}

	for _, payment := range payments {
		if p := FromDomainPayment(payment); p != nil {
			resp.Payments = append(resp.Payments, *p)
		}
	}

	return resp
}
