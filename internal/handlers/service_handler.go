package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-booking/internal/middleware"
	ucBooking "github.com/BruksfildServices01/barbershop-booking/internal/usecase/booking"
)

const maxImageBytes = 5 << 20

type ServiceHandler struct {
	uc *ucBooking.ManageServices
}

func NewServiceHandler(uc *ucBooking.ManageServices) *ServiceHandler {
	return &ServiceHandler{uc: uc}
}

// ServiceRequest is used for create and partial update. Price is in centavos.
type ServiceRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *int64  `json:"price"`
	DurationMin *int    `json:"duration_min"`
	Image       *string `json:"image"`
	Category    *string `json:"category"`
}

func (r ServiceRequest) input() ucBooking.ServiceInput {
	return ucBooking.ServiceInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		DurationMin: r.DurationMin,
		Image:       r.Image,
		Category:    r.Category,
	}
}

func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.uc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}

	s, err := h.uc.Create(c.Request.Context(), req.input(), middleware.UserID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Created(c, s)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}

	s, err := h.uc.Update(c.Request.Context(), id, req.input(), middleware.UserID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, s)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.uc.Delete(c.Request.Context(), id, middleware.UserID(c)); err != nil {
		writeError(c, err)
		return
	}

	httpresp.Deleted(c)
}

// UploadImage expects a multipart form with the file under "image".
func (h *ServiceHandler) UploadImage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImageBytes)

	fh, err := c.FormFile("image")
	if err != nil {
		httperr.WriteField(c, "image", "Envie uma imagem de até 5 MB.")
		return
	}

	f, err := fh.Open()
	if err != nil {
		writeError(c, err)
		return
	}
	defer f.Close()

	s, err := h.uc.UploadImage(c.Request.Context(), id, f, middleware.UserID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, s)
}
