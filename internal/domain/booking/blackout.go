package booking

import "github.com/BruksfildServices01/barbershop-booking/internal/models"

// BlocksOnDate filters blocks by exact date match. No recurrence.
func BlocksOnDate(blocks []models.BlockedTime, date string) []models.BlockedTime {
	out := make([]models.BlockedTime, 0, len(blocks))
	for _, b := range blocks {
		if b.Date == date {
			out = append(out, b)
		}
	}
	return out
}

// IsFullDay reports whether the block closes the whole date.
func IsFullDay(b models.BlockedTime) bool {
	return isBlank(b.StartTime) && isBlank(b.EndTime)
}

// BlockInterval returns the sub-range of a block. ok is false for full-day
// blocks and for blocks with only one bound.
func BlockInterval(b models.BlockedTime) (Interval, bool) {
	if isBlank(b.StartTime) || isBlank(b.EndTime) {
		return Interval{}, false
	}
	return Interval{
		Start: TimeToMinutes(*b.StartTime),
		End:   TimeToMinutes(*b.EndTime),
	}, true
}

func isBlank(s *string) bool {
	return s == nil || *s == ""
}
