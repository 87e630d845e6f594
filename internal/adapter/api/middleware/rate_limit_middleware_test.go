package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRateLimitPerClientIP(t *testing.T) {
	e := echo.New()
	e.POST("/api/email/signUp", func(c echo.Context) error {
		return c.String(http.StatusOK, "sent")
	}, RateLimit(0.001, 2, time.Minute))

	send := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/email/signUp", nil)
		req.Header.Set(echo.HeaderXRealIP, ip)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1"))
	assert.Equal(t, http.StatusOK, send("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1"))

	assert.Equal(t, http.StatusOK, send("10.0.0.2"), "other clients keep their own budget")
}
