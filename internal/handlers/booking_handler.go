package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-booking/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-booking/internal/middleware"
	ucBooking "github.com/BruksfildServices01/barbershop-booking/internal/usecase/booking"
)

type BookingHandler struct {
	list         *ucBooking.ListBookings
	updateStatus *ucBooking.UpdateBookingStatus
}

func NewBookingHandler(
	list *ucBooking.ListBookings,
	updateStatus *ucBooking.UpdateBookingStatus,
) *BookingHandler {
	return &BookingHandler{list: list, updateStatus: updateStatus}
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.list.Execute(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, bookings)
}

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}

	b, err := h.updateStatus.Execute(c.Request.Context(), ucBooking.UpdateBookingStatusInput{
		BookingID: id,
		Status:    req.Status,
		UserID:    middleware.UserID(c),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, b)
}
