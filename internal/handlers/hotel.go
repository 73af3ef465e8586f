package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Nicoladla/drivent-booking/internal/domain"
	"github.com/Nicoladla/drivent-booking/internal/service"
)

type HotelHandler struct {
	svc *service.HotelSvc
}

func NewHotelHandler(svc *service.HotelSvc) *HotelHandler {
	return &HotelHandler{svc: svc}
}

// GET /hotels
func (h *HotelHandler) List(c *gin.Context) {
	hotels, err := h.svc.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, hotels)
}

// GET /hotels/:hotelId
func (h *HotelHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("hotelId"), 10, 64)
	if err != nil {
		fail(c, fmt.Errorf("hotelId must be numeric: %w", domain.ErrBadRequest))
		return
	}
	hotel, err := h.svc.Get(c.Request.Context(), uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, hotel)
}
