package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"visionmatch/pkg/errors"
	"visionmatch/pkg/logger"
	"visionmatch/pkg/response"
)

// RateLimit throttles each client IP to perSecond requests with the given
// burst. Idle visitors are forgotten after expiresIn.
func RateLimit(perSecond float64, burst int, expiresIn time.Duration) echo.MiddlewareFunc {
	store := echomw.NewRateLimiterMemoryStoreWithConfig(echomw.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(perSecond),
		Burst:     burst,
		ExpiresIn: expiresIn,
	})

	return echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return response.Error(c, errors.New("RATE_LIMIT_ERROR", "Could not identify client", http.StatusForbidden, err))
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			logger.Warn("Rate limit exceeded for %s on %s", identifier, c.Path())
			return response.Error(c, errors.New("RATE_LIMITED", "Too many requests, please try again later", http.StatusTooManyRequests, nil))
		},
	})
}
