package domain

import "time"

// EventType identifies a booking engine event published to the notification channel
type EventType string

const (
	EventBookingCreated       EventType = "booking.created"
	EventBookingStatusChanged EventType = "booking.status_changed"
	EventPaymentCreated       EventType = "payment.created"
	EventPaymentCompleted     EventType = "payment.completed"
	EventPaymentRefunded      EventType = "payment.refunded"
)

// Event is an observable state change of a booking or its payment
type Event struct {
	Type        EventType
	BookingID   int64
	PaymentID   int64 // 0 для событий бронирования
	OwnerID     int64
	CaretakerID int64
	FromStatus  string
	ToStatus    string
	OccurredAt  time.Time
}

// NewBookingCreatedEvent builds the event emitted after a booking is persisted
func NewBookingCreatedEvent(b *Booking, at time.Time) Event {
	return Event{
		Type:        EventBookingCreated,
		BookingID:   b.ID,
		OwnerID:     b.OwnerID,
		CaretakerID: b.CaretakerID,
		ToStatus:    string(b.Status),
		OccurredAt:  at,
	}
}

// NewBookingStatusChangedEvent builds the event emitted after a status transition
func NewBookingStatusChangedEvent(b *Booking, from BookingStatus, at time.Time) Event {
	return Event{
		Type:        EventBookingStatusChanged,
		BookingID:   b.ID,
		OwnerID:     b.OwnerID,
		CaretakerID: b.CaretakerID,
		FromStatus:  string(from),
		ToStatus:    string(b.Status),
		OccurredAt:  at,
	}
}

// NewPaymentEvent builds a payment lifecycle event
func NewPaymentEvent(t EventType, p *Payment, from PaymentStatus, at time.Time) Event {
	return Event{
		Type:        t,
		BookingID:   p.BookingID,
		PaymentID:   p.ID,
		OwnerID:     p.OwnerID,
		CaretakerID: p.CaretakerID,
		FromStatus:  string(from),
		ToStatus:    string(p.Status),
		OccurredAt:  at,
	}
}
