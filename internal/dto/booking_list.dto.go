package dto

import "time"

// BookingListDTO is the admin view of a booking, enriched with the name of
// the service it references.
type BookingListDTO struct {
	ID            uint      `json:"id"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	CustomerEmail string    `json:"customer_email"`
	ServiceID     uint      `json:"service_id"`
	ServiceName   string    `json:"service_name"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}
