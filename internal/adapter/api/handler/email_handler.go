package handler

import (
	"github.com/labstack/echo/v4"

	"visionmatch/internal/domain/service"
	"visionmatch/pkg/errors"
	"visionmatch/pkg/response"
)

type EmailHandler struct {
	notifications *service.NotificationService
}

func NewEmailHandler(notifications *service.NotificationService) *EmailHandler {
	return &EmailHandler{
		notifications: notifications,
	}
}

type signupEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func bindEmail(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return errors.BadRequest("Invalid request body", err)
	}
	return c.Validate(req)
}

func sent(c echo.Context, message string) error {
	return response.Success(c, map[string]string{"message": message})
}

func (h *EmailHandler) SignupSuccess(c echo.Context) error {
	var req signupEmailRequest
	if err := bindEmail(c, &req); err != nil {
		return response.Error(c, err)
	}
	if err := h.notifications.SendSignupSuccess(c.Request().Context(), req.Email); err != nil {
		return response.Error(c, err)
	}
	return sent(c, "Signup success email sent")
}

func (h *EmailHandler) NewBooking(c echo.Context) error {
	var req service.NewBookingEmail
	if err := bindEmail(c, &req); err != nil {
		return response.Error(c, err)
	}
	if err := h.notifications.SendNewBooking(c.Request().Context(), req); err != nil {
		return response.Error(c, err)
	}
	return sent(c, "Booking emails sent to client and creator")
}

func (h *EmailHandler) BookingAccepted(c echo.Context) error {
	var req service.BookingAcceptedEmail
	if err := bindEmail(c, &req); err != nil {
		return response.Error(c, err)
	}
	if err := h.notifications.SendBookingAccepted(c.Request().Context(), req); err != nil {
		return response.Error(c, err)
	}
	return sent(c, "Booking accepted email sent to client")
}

func (h *EmailHandler) BookingDeclined(c echo.Context) error {
	var req service.BookingDeclinedEmail
	if err := bindEmail(c, &req); err != nil {
		return response.Error(c, err)
	}
	if err := h.notifications.SendBookingDeclined(c.Request().Context(), req); err != nil {
		return response.Error(c, err)
	}
	return sent(c, "Booking declined email sent to client")
}

func (h *EmailHandler) PaymentSuccess(c echo.Context) error {
	var req service.PaymentReceiptEmail
	if err := bindEmail(c, &req); err != nil {
		return response.Error(c, err)
	}
	if err := h.notifications.SendPaymentReceipt(c.Request().Context(), req); err != nil {
		return response.Error(c, err)
	}
	return sent(c, "Payment success email sent to client")
}
