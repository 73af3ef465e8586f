package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Nicoladla/drivent-booking/internal/domain"
	"github.com/Nicoladla/drivent-booking/internal/service"
)

type BookingHandler struct {
	svc *service.BookingSvc
}

func NewBookingHandler(svc *service.BookingSvc) *BookingHandler {
	return &BookingHandler{svc: svc}
}

// GET /booking
func (h *BookingHandler) Get(c *gin.Context) {
	b, err := h.svc.Get(c.Request.Context(), userID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// POST /booking
func (h *BookingHandler) Create(c *gin.Context) {
	var in struct {
		RoomID uint `json:"roomId" binding:"required"`
	}
	// a non-numeric or missing roomId maps to 404, same as an unknown room
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, fmt.Errorf("invalid roomId: %w", domain.ErrNotFound))
		return
	}
	b, err := h.svc.Create(c.Request.Context(), userID(c), in.RoomID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookingId": b.ID})
}

// PUT /booking/:bookingId
func (h *BookingHandler) Update(c *gin.Context) {
	// checked before any data access
	id, err := strconv.ParseUint(c.Param("bookingId"), 10, 64)
	if err != nil {
		fail(c, fmt.Errorf("bookingId must be numeric: %w", domain.ErrBadRequest))
		return
	}
	var in struct {
		RoomID uint `json:"roomId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, fmt.Errorf("invalid roomId: %w", domain.ErrNotFound))
		return
	}
	b, err := h.svc.ChangeRoom(c.Request.Context(), uint(id), userID(c), in.RoomID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookingId": b.ID})
}
