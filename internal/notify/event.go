package notify

import "github.com/BruksfildServices01/barbershop-booking/internal/models"

const EventNewBooking = "new_booking"

const unknownService = "Unknown Service"

// BookingCreated is the payload delivered to every channel after a booking
// is persisted. Field names follow the automation webhook contract.
type BookingCreated struct {
	Event         string `json:"event"`
	BookingID     uint   `json:"bookingId"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	CustomerEmail string `json:"customerEmail"`
	ServiceName   string `json:"serviceName"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Price         int64  `json:"price"`
	DurationMin   int    `json:"durationMin"`
}

// NewBookingCreated resolves the service details; a nil service yields an
// "Unknown Service" event with zero price.
func NewBookingCreated(b models.Booking, s *models.Service) BookingCreated {
	ev := BookingCreated{
		Event:         EventNewBooking,
		BookingID:     b.ID,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		CustomerEmail: b.CustomerEmail,
		ServiceName:   unknownService,
		Date:          b.Date,
		Time:          b.Time,
	}
	if s != nil {
		ev.ServiceName = s.Name
		ev.Price = s.Price
		ev.DurationMin = s.DurationMin
	}
	return ev
}
