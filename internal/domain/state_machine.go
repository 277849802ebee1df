package domain

import "fmt"

// bookingTransitions таблица допустимых переходов статуса бронирования
var bookingTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusAccepted, StatusRejected},
	StatusAccepted:  {StatusCompleted, StatusRejected},
	StatusRejected:  {},
	StatusCompleted: {},
}

// ParseBookingStatus converts a wire token to a BookingStatus
func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return status, nil
}

// IsValid returns true if the status is one of the four known tokens
func (s BookingStatus) IsValid() bool {
	_, ok := bookingTransitions[s]
	return ok
}

// IsTerminal returns true if no further transitions are possible
func (s BookingStatus) IsTerminal() bool {
	return len(bookingTransitions[s]) == 0
}

// CanTransitionTo returns true if the transition is listed in the table
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ValidateTransition returns a *TransitionError naming both states when the
// transition is not allowed. Same-status requests are the caller's no-op case
// and are reported as invalid here.
func (s BookingStatus) ValidateTransition(next BookingStatus) error {
	if !next.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, next)
	}
	if !s.CanTransitionTo(next) {
		return &TransitionError{From: string(s), To: string(next)}
	}
	return nil
}
