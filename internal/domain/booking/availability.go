package booking

import (
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

// AvailableSlots lists the start times at which service can be admitted on
// day.Date, ascending, at SlotStepMinutes granularity. now must already be
// projected into the shop timezone. It never mutates its inputs.
func AvailableSlots(day Day, service models.Service, now time.Time) []string {
	slots := []string{}

	today := now.Format(DateLayout)
	if day.Date < today {
		return slots
	}

	blocks, fullDay := day.blocked()
	if fullDay {
		return slots
	}

	busy := day.occupied()
	open, closing := day.openClose()
	isToday := day.Date == today
	earliest := MinuteOfDay(now) + LeadTimeMinutes

	for candidate := open; candidate < closing; candidate += SlotStepMinutes {
		slot := OccupiedInterval(candidate, service.DurationMin)

		if slot.End > closing {
			continue
		}
		if isToday && candidate < earliest {
			continue
		}
		if overlapsAny(slot, busy) {
			continue
		}
		if overlapsAny(slot, blocks) {
			continue
		}

		slots = append(slots, MinutesToTime(candidate))
	}

	return slots
}

// OccupiedSlot is one busy quantum of the legacy busy-set view.
type OccupiedSlot struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// OccupiedSlots expands every active booking into the SlotStepMinutes ticks
// its occupied interval touches.
func OccupiedSlots(bookings []models.Booking, catalog Catalog) []OccupiedSlot {
	var out []OccupiedSlot
	for _, b := range bookings {
		if !IsActive(b.Status) {
			continue
		}

		occ := OccupiedInterval(TimeToMinutes(b.Time), catalog.durationOf(b.ServiceID))
		first := occ.Start - occ.Start%SlotStepMinutes

		for tick := first; tick < occ.End && tick < 24*60; tick += SlotStepMinutes {
			out = append(out, OccupiedSlot{Date: b.Date, Time: MinutesToTime(tick)})
		}
	}
	return out
}
