package booking

import "errors"

// Reason identifies why a booking request was not admitted.
type Reason string

const (
	ReasonInvalidService       Reason = "invalid_service"
	ReasonOutOfHours           Reason = "out_of_hours"
	ReasonPastDate             Reason = "past_date"
	ReasonInsufficientLeadTime Reason = "insufficient_lead_time"
	ReasonBookingConflict      Reason = "booking_conflict"
	ReasonBlockedConflict      Reason = "blocked_conflict"
)

type AdmissionError struct {
	Reason Reason
}

func (e *AdmissionError) Error() string {
	return "booking not admitted: " + string(e.Reason)
}

// Is matches any AdmissionError with the same reason.
func (e *AdmissionError) Is(target error) bool {
	var t *AdmissionError
	if errors.As(target, &t) {
		return t.Reason == e.Reason
	}
	return false
}

// IsConflict separates resource conflicts from request-level rejections.
func (e *AdmissionError) IsConflict() bool {
	return e.Reason == ReasonBookingConflict || e.Reason == ReasonBlockedConflict
}

var (
	ErrInvalidService       = &AdmissionError{Reason: ReasonInvalidService}
	ErrOutOfHours           = &AdmissionError{Reason: ReasonOutOfHours}
	ErrPastDate             = &AdmissionError{Reason: ReasonPastDate}
	ErrInsufficientLeadTime = &AdmissionError{Reason: ReasonInsufficientLeadTime}
	ErrBookingConflict      = &AdmissionError{Reason: ReasonBookingConflict}
	ErrBlockedConflict      = &AdmissionError{Reason: ReasonBlockedConflict}
)

var (
	ErrNotFound          = errors.New("booking: not found")
	ErrInvalidStatus     = errors.New("booking: invalid status")
	ErrInvalidTransition = errors.New("booking: invalid status transition")
)
