package router

import (
	"github.com/labstack/echo/v4"

	"visionmatch/internal/adapter/api/handler"
)

// Options carries the route wiring that depends on configuration.
type Options struct {
	EmailLimiter     echo.MiddlewareFunc
	WebSocketHandler *handler.WebSocketHandler
	ReferenceImages  bool
}

func Setup(e *echo.Echo, opts Options) {
	SetupProjectRequestRouter(e, opts.ReferenceImages)
	SetupBookingRouter(e)
	SetupReviewRouter(e)
	SetupEmailRouter(e, opts.EmailLimiter)
	if opts.WebSocketHandler != nil {
		SetupWebSocketRouter(e, opts.WebSocketHandler)
	}
	SetupHealthRouter(e)
}
