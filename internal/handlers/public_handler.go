package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-booking/internal/httpresp"
	ucBooking "github.com/BruksfildServices01/barbershop-booking/internal/usecase/booking"
	"github.com/BruksfildServices01/barbershop-booking/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type PublicHandler struct {
	availability *ucBooking.GetAvailability
	create       *ucBooking.CreateBooking
	occupied     *ucBooking.OccupiedSlots
}

func NewPublicHandler(
	availability *ucBooking.GetAvailability,
	create *ucBooking.CreateBooking,
	occupied *ucBooking.OccupiedSlots,
) *PublicHandler {
	return &PublicHandler{
		availability: availability,
		create:       create,
		occupied:     occupied,
	}
}

// ======================================================
// DTOs
// ======================================================

type CreateBookingRequest struct {
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email"`
	ServiceID     uint   `json:"service_id"`
	Date          string `json:"date"` // YYYY-MM-DD
	Time          string `json:"time"` // HH:MM
}

// ======================================================
// AVAILABILITY
// ======================================================

// Availability answers GET /api/availability?date=YYYY-MM-DD&serviceId=N
// with the ordered list of bookable start times.
func (h *PublicHandler) Availability(c *gin.Context) {
	raw := c.Query("serviceId")
	if raw == "" {
		raw = c.Query("service_id")
	}

	serviceID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		writeError(c, validators.NewFieldError("serviceId", "Serviço obrigatório."))
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), ucBooking.GetAvailabilityInput{
		Date:      c.Query("date"),
		ServiceID: uint(serviceID),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, slots)
}

// ======================================================
// BOOKINGS
// ======================================================

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}

	b, err := h.create.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		ServiceID:     req.ServiceID,
		Date:          req.Date,
		Time:          req.Time,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Created(c, b)
}

// Occupied is the legacy busy-set view: every 15-minute tick held by an
// active booking.
func (h *PublicHandler) Occupied(c *gin.Context) {
	slots, err := h.occupied.Execute(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"occupied_slots": slots})
}
