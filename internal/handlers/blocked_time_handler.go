package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-booking/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-booking/internal/middleware"
	ucBooking "github.com/BruksfildServices01/barbershop-booking/internal/usecase/booking"
)

type BlockedTimeHandler struct {
	list   *ucBooking.ListBlockedTimes
	create *ucBooking.CreateBlockedTime
	delete *ucBooking.DeleteBlockedTime
}

func NewBlockedTimeHandler(
	list *ucBooking.ListBlockedTimes,
	create *ucBooking.CreateBlockedTime,
	del *ucBooking.DeleteBlockedTime,
) *BlockedTimeHandler {
	return &BlockedTimeHandler{list: list, create: create, delete: del}
}

// CreateBlockedTimeRequest leaves start_time and end_time out to close the
// whole day.
type CreateBlockedTimeRequest struct {
	Date      string  `json:"date"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Reason    *string `json:"reason"`
}

func (h *BlockedTimeHandler) List(c *gin.Context) {
	blocks, err := h.list.Execute(c.Request.Context(), c.Query("date"))
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, blocks)
}

func (h *BlockedTimeHandler) Create(c *gin.Context) {
	var req CreateBlockedTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}

	block, err := h.create.Execute(c.Request.Context(), ucBooking.CreateBlockedTimeInput{
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Reason:    req.Reason,
		UserID:    middleware.UserID(c),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Created(c, block)
}

func (h *BlockedTimeHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), id, middleware.UserID(c)); err != nil {
		writeError(c, err)
		return
	}

	httpresp.Deleted(c)
}
