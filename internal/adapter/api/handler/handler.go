package handler

import (
	"visionmatch/internal/domain/service"
	"visionmatch/internal/usecase"
)

var (
	projectRequestHandler *ProjectRequestHandler
	bookingHandler        *BookingHandler
	reviewHandler         *ReviewHandler
	emailHandler          *EmailHandler
)

func Setup(
	projectRequestUseCase *usecase.ProjectRequestUseCase,
	negotiationUseCase *usecase.NegotiationUseCase,
	bookingUseCase *usecase.BookingUseCase,
	reviewUseCase *usecase.ReviewUseCase,
	notificationService *service.NotificationService,
) {
	projectRequestHandler = NewProjectRequestHandler(projectRequestUseCase, negotiationUseCase)
	bookingHandler = NewBookingHandler(bookingUseCase)
	reviewHandler = NewReviewHandler(reviewUseCase)
	emailHandler = NewEmailHandler(notificationService)
}

func GetProjectRequestHandler() *ProjectRequestHandler {
	return projectRequestHandler
}

func GetBookingHandler() *BookingHandler {
	return bookingHandler
}

func GetReviewHandler() *ReviewHandler {
	return reviewHandler
}

func GetEmailHandler() *EmailHandler {
	return emailHandler
}
