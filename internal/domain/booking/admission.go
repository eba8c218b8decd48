package booking

import (
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

// Request is a customer booking request with already validated formats.
type Request struct {
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	ServiceID     uint
	Date          string
	Time          string
}

// Admit re-runs the availability rules against a single start time. It is
// called at write time with freshly read data because the slot list the
// customer picked from may be stale. The first failing check wins.
func Admit(day Day, req Request, now time.Time) (*models.Booking, error) {
	service, ok := day.Catalog.Lookup(req.ServiceID)
	if !ok {
		return nil, ErrInvalidService
	}

	start := TimeToMinutes(req.Time)
	slot := OccupiedInterval(start, service.DurationMin)

	open, closing := day.openClose()
	if slot.Start < open || slot.End > closing {
		return nil, ErrOutOfHours
	}

	today := now.Format(DateLayout)
	if req.Date < today {
		return nil, ErrPastDate
	}

	if req.Date == today && start < MinuteOfDay(now)+LeadTimeMinutes {
		return nil, ErrInsufficientLeadTime
	}

	if overlapsAny(slot, day.occupied()) {
		return nil, ErrBookingConflict
	}

	blocks, fullDay := day.blocked()
	if fullDay || overlapsAny(slot, blocks) {
		return nil, ErrBlockedConflict
	}

	return &models.Booking{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		ServiceID:     service.ID,
		Date:          req.Date,
		Time:          req.Time,
		Status:        string(StatusPending),
	}, nil
}
