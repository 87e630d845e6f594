package handler

import (
	"github.com/labstack/echo/v4"

	"visionmatch/internal/usecase"
	"visionmatch/pkg/errors"
	"visionmatch/pkg/response"
)

type BookingHandler struct {
	bookingUseCase *usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase *usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
	}
}

type confirmPaymentRequest struct {
	RequestID     string `json:"requestId" validate:"required"`
	TransactionID string `json:"transactionId"`
	ClientEmail   string `json:"clientEmail" validate:"omitempty,email"`
	ClientName    string `json:"clientName"`
	CreatorName   string `json:"creatorName"`
}

type confirmEventRequest struct {
	Confirmed *bool  `json:"confirmed"`
	Reason    string `json:"reason"`
}

func (h *BookingHandler) ConfirmPayment(c echo.Context) error {
	var req confirmPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	booking, err := h.bookingUseCase.ConfirmPayment(c.Request().Context(), usecase.ConfirmPaymentInput{
		RequestID:     req.RequestID,
		TransactionID: req.TransactionID,
		ClientEmail:   req.ClientEmail,
		ClientName:    req.ClientName,
		CreatorName:   req.CreatorName,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, booking)
}

func (h *BookingHandler) GetBooking(c echo.Context) error {
	booking, err := h.bookingUseCase.GetBooking(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, booking)
}

func (h *BookingHandler) ListClientBookings(c echo.Context) error {
	bookings, err := h.bookingUseCase.ListClientBookings(c.Request().Context(), c.Param("clientId"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.List(c, bookings, len(bookings))
}

func (h *BookingHandler) ListCreatorBookings(c echo.Context) error {
	bookings, err := h.bookingUseCase.ListCreatorBookings(c.Request().Context(), c.Param("creatorId"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.List(c, bookings, len(bookings))
}

// ConfirmEvent treats a missing confirmed flag as a confirmation.
func (h *BookingHandler) ConfirmEvent(c echo.Context) error {
	var req confirmEventRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	confirmed := true
	if req.Confirmed != nil {
		confirmed = *req.Confirmed
	}

	status, err := h.bookingUseCase.ConfirmEvent(c.Request().Context(), c.Param("id"), usecase.ConfirmEventInput{
		Confirmed: confirmed,
		Reason:    req.Reason,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"status": status})
}
