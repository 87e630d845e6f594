package router

import (
	"visionmatch/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupBookingRouter(e *echo.Echo) {
	bookingHandler := handler.GetBookingHandler()

	bookings := e.Group("/api/bookings")
	bookings.POST("/confirm-payment", bookingHandler.ConfirmPayment)
	bookings.GET("/client/:clientId", bookingHandler.ListClientBookings)
	bookings.GET("/creator/:creatorId", bookingHandler.ListCreatorBookings)
	bookings.GET("/:id", bookingHandler.GetBooking)
	bookings.POST("/:id/confirm-event", bookingHandler.ConfirmEvent)
}
