package router

import (
	"visionmatch/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupProjectRequestRouter(e *echo.Echo, referenceImages bool) {
	requestHandler := handler.GetProjectRequestHandler()

	projects := e.Group("/api/projects")
	projects.POST("/request", requestHandler.CreateRequest)
	projects.GET("/request/:id", requestHandler.GetRequest)
	projects.GET("/requests/:clientId", requestHandler.ListClientRequests)
	projects.GET("/creator-requests/:creatorId", requestHandler.ListCreatorRequests)

	// Negotiation thread
	projects.POST("/:id/messages", requestHandler.SendMessage)
	projects.GET("/:id/messages", requestHandler.ListMessages)

	if referenceImages {
		projects.POST("/request/:id/reference-images", requestHandler.UploadReferenceImage)
	}

	e.POST("/api/project-request/:id/respond", requestHandler.Respond)
}
