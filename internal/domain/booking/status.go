package booking

import "github.com/BruksfildServices01/barbershop-booking/internal/models"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return st, nil
	}
	return "", ErrInvalidStatus
}

// IsActive reports whether a booking with status s still holds its slot.
// Cancelled bookings are soft-voided; empty status means pending.
func IsActive(s string) bool {
	return Status(s) != StatusCancelled
}

// CanTransition reports whether from -> to is in the legal state machine.
// Re-applying the current status is always allowed.
func CanTransition(from, to Status) bool {
	if from == to {
		return true
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition applies to onto b. When strict is false any target is accepted,
// matching the administrator's unconditional override.
func Transition(b *models.Booking, to Status, strict bool) error {
	from := Status(b.Status)
	if from == "" {
		from = StatusPending
	}
	if strict && !CanTransition(from, to) {
		return ErrInvalidTransition
	}
	b.Status = string(to)
	return nil
}
