package booking

import "github.com/BruksfildServices01/barbershop-booking/internal/models"

// Catalog resolves service references to their current definition.
// Durations are read by reference, so editing a service changes the
// occupied interval of bookings that already point to it.
type Catalog map[uint]models.Service

func NewCatalog(services []models.Service) Catalog {
	c := make(Catalog, len(services))
	for _, s := range services {
		c[s.ID] = s
	}
	return c
}

func (c Catalog) Lookup(id uint) (models.Service, bool) {
	s, ok := c[id]
	return s, ok
}

// durationOf falls back to one quantum when the service no longer exists.
func (c Catalog) durationOf(id uint) int {
	if s, ok := c[id]; ok && s.DurationMin > 0 {
		return s.DurationMin
	}
	return SlotStepMinutes
}

// Day is the snapshot of shared data both read and write paths decide on.
type Day struct {
	Date     string
	Settings models.ShopSettings
	Bookings []models.Booking
	Blocks   []models.BlockedTime
	Catalog  Catalog
}

func (d Day) openClose() (int, int) {
	return TimeToMinutes(d.Settings.OpenTime), TimeToMinutes(d.Settings.CloseTime)
}

// occupied returns the intervals of active bookings on d.Date.
func (d Day) occupied() []Interval {
	var out []Interval
	for _, b := range d.Bookings {
		if b.Date != d.Date || !IsActive(b.Status) {
			continue
		}
		out = append(out, OccupiedInterval(TimeToMinutes(b.Time), d.Catalog.durationOf(b.ServiceID)))
	}
	return out
}

// blocked returns sub-range blocks on d.Date and whether any block voids
// the whole day.
func (d Day) blocked() ([]Interval, bool) {
	var out []Interval
	for _, b := range BlocksOnDate(d.Blocks, d.Date) {
		if IsFullDay(b) {
			return nil, true
		}
		if iv, ok := BlockInterval(b); ok {
			out = append(out, iv)
		}
	}
	return out, false
}
