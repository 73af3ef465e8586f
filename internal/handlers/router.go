package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Nicoladla/drivent-booking/internal/middlewares"
)

// NewRouter wires the HTTP surface. Every route requires a valid bearer
// token; the middleware supplies the trusted user id.
func NewRouter(bh *BookingHandler, hh *HotelHandler) *gin.Engine {
	r := gin.Default()

	secured := r.Group("")
	secured.Use(middlewares.JWTAuth())
	{
		secured.GET("/booking", bh.Get)
		secured.POST("/booking", bh.Create)
		secured.PUT("/booking/:bookingId", bh.Update)

		secured.GET("/hotels", hh.List)
		secured.GET("/hotels/:hotelId", hh.Get)
	}
	return r
}
