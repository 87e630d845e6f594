package router

import (
	"visionmatch/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupReviewRouter(e *echo.Echo) {
	reviewHandler := handler.GetReviewHandler()

	reviews := e.Group("/api/reviews")
	reviews.POST("/create", reviewHandler.CreateReview)
	reviews.GET("/creator/:creatorId", reviewHandler.ListCreatorReviews)
	reviews.GET("/check/:requestId", reviewHandler.CheckReviewStatus)
	reviews.GET("/:id", reviewHandler.GetReview)
}
