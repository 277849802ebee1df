package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusAccepted  BookingStatus = "accepted"
	StatusRejected  BookingStatus = "rejected"
	StatusCompleted BookingStatus = "completed"
)

// Booking represents a care booking between a pet owner and a caretaker
type Booking struct {
	ID          int64
	OwnerID     int64
	CaretakerID int64
	ServiceID   int64
	PetID       int64
	Start       time.Time
	End         time.Time // exclusive
	Status      BookingStatus
	TotalPrice  float64 // фиксируется при создании и больше не пересчитывается

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Interval returns the half-open interval [Start, End) of the booking
func (b *Booking) Interval() Interval {
	return Interval{Start: b.Start, End: b.End}
}

// IsActive returns true if the booking consumes caretaker capacity
func (b *Booking) IsActive() bool {
	return b.Status.IsActive()
}

// IsParticipant returns true if the user is the owner or the caretaker of the booking
func (b *Booking) IsParticipant(userID int64) bool {
	return b.OwnerID == userID || b.CaretakerID == userID
}

// IsActive returns true for statuses that hold capacity (pending, accepted)
func (s BookingStatus) IsActive() bool {
	for _, active := range ActiveStatuses {
		if s == active {
			return true
		}
	}
	return false
}

// String returns the wire token of the status
func (s BookingStatus) String() string {
	return string(s)
}

// CaretakerBookingsFilter фильтр расписания ситтера
type CaretakerBookingsFilter struct {
	CaretakerID     int64
	Status          *BookingStatus
	From            *time.Time // бронирования, пересекающие [From, To)
	To              *time.Time
	IncludeInactive bool // по умолчанию только pending и accepted
}
