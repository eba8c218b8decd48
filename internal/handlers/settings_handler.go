package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-booking/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-booking/internal/middleware"
	ucBooking "github.com/BruksfildServices01/barbershop-booking/internal/usecase/booking"
)

type SettingsHandler struct {
	get    *ucBooking.GetSettings
	update *ucBooking.UpdateSettings
}

func NewSettingsHandler(get *ucBooking.GetSettings, update *ucBooking.UpdateSettings) *SettingsHandler {
	return &SettingsHandler{get: get, update: update}
}

type UpdateSettingsRequest struct {
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
}

func (h *SettingsHandler) Get(c *gin.Context) {
	s, err := h.get.Execute(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, s)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}

	s, err := h.update.Execute(c.Request.Context(), ucBooking.UpdateSettingsInput{
		OpenTime:  req.OpenTime,
		CloseTime: req.CloseTime,
		UserID:    middleware.UserID(c),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, s)
}
