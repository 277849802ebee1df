package events

import (
	"time"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
)

// Message JSON-представление события в канале уведомлений
type Message struct {
	Type        string    `json:"type"`
	BookingID   int64     `json:"bookingId"`
	PaymentID   *int64    `json:"paymentId,omitempty"`
	OwnerID     int64     `json:"ownerId"`
	CaretakerID int64     `json:"caretakerId"`
	FromStatus  *string   `json:"fromStatus,omitempty"`
	ToStatus    string    `json:"toStatus"`
	OccurredAt  time.Time `json:"occurredAt"`
}

// NewMessage конвертирует доменное событие в сообщение
func NewMessage(event domain.Event) Message {
	msg := Message{
		Type:        string(event.Type),
		BookingID:   event.BookingID,
		OwnerID:     event.OwnerID,
		CaretakerID: event.CaretakerID,
		ToStatus:    event.ToStatus,
		OccurredAt:  event.OccurredAt.UTC(),
	}

	if event.PaymentID != 0 {
		paymentID := event.PaymentID
		msg.PaymentID = &paymentID
	}
	if event.FromStatus != "" {
		from := event.FromStatus
		msg.FromStatus = &from
	}

	return msg
}
