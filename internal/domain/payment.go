package domain

import (
	"fmt"
	"time"
)

// PaymentStatus represents the status of a payment
type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "pending"
	PaymentProcessing PaymentStatus = "processing"
	PaymentCompleted  PaymentStatus = "completed"
	PaymentFailed     PaymentStatus = "failed"
	PaymentRefunded   PaymentStatus = "refunded"
)

// PaymentMethod represents how the owner pays
type PaymentMethod string

const (
	MethodCard         PaymentMethod = "card"
	MethodBankTransfer PaymentMethod = "bank_transfer"
)

// paymentTransitions только захват (pending -> completed) и возврат (completed -> refunded)
var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentPending:    {PaymentCompleted},
	PaymentProcessing: {},
	PaymentCompleted:  {PaymentRefunded},
	PaymentFailed:     {},
	PaymentRefunded:   {},
}

// Payment represents the settlement of an accepted booking (one per booking)
type Payment struct {
	ID              int64
	BookingID       int64
	OwnerID         int64
	CaretakerID     int64
	Amount          float64
	PlatformFee     float64
	CaretakerPayout float64
	Status          PaymentStatus
	Method          PaymentMethod
	TransactionID   *string

	CreatedAt   time.Time
	CompletedAt *time.Time
	RefundedAt  *time.Time
}

// IsParticipant returns true if the user is the payer or the payee
func (p *Payment) IsParticipant(userID int64) bool {
	return p.OwnerID == userID || p.CaretakerID == userID
}

// ParsePaymentMethod converts a wire token to PaymentMethod, empty means card
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case "":
		return MethodCard, nil
	case MethodCard, MethodBankTransfer:
		return PaymentMethod(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, s)
	}
}

// IsValid returns true if the status is a known payment status
func (s PaymentStatus) IsValid() bool {
	_, ok := paymentTransitions[s]
	return ok
}

// ValidateTransition checks the payment transition table
func (s PaymentStatus) ValidateTransition(next PaymentStatus) error {
	for _, allowed := range paymentTransitions[s] {
		if allowed == next {
			return nil
		}
	}
	return &TransitionError{From: string(s), To: string(next)}
}
