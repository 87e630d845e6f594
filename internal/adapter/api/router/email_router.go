package router

import (
	"visionmatch/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupEmailRouter(e *echo.Echo, limiter echo.MiddlewareFunc) {
	emailHandler := handler.GetEmailHandler()

	email := e.Group("/api/email")
	if limiter != nil {
		email.Use(limiter)
	}

	email.POST("/signUp", emailHandler.SignupSuccess)
	email.POST("/booking/new", emailHandler.NewBooking)
	email.POST("/booking/accepted", emailHandler.BookingAccepted)
	email.POST("/booking/declined", emailHandler.BookingDeclined)
	email.POST("/payment/success", emailHandler.PaymentSuccess)
}
