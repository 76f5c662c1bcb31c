package domain

import (
	"fmt"
	"time"
)

// allowedTransitions defines the legal moves of the booking state machine.
// Terminal states have no outgoing transitions; self-transitions are not allowed.
var allowedTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

// CanTransition returns true if a booking may move from one status to another
func CanTransition(from, to BookingStatus) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsTerminal returns true if the status has no outgoing transitions
func IsTerminal(s BookingStatus) bool {
	return len(allowedTransitions[s]) == 0
}

// TransitionError describes an illegal state change
type TransitionError struct {
	From BookingStatus
	To   BookingStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("booking state machine: transition %s -> %s is not allowed", e.From, e.To)
}

// ApplyTransition returns a copy of the booking moved to the target status.
// On an illegal move the booking is returned unchanged together with a *TransitionError.
func ApplyTransition(b Booking, to BookingStatus, now time.Time) (Booking, error) {
	if !CanTransition(b.Status, to) {
		return b, &TransitionError{From: b.Status, To: to}
	}
	b.Status = to
	b.UpdatedAt = now
	return b, nil
}
