package handler

import (
	"net/http"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	ws "visionmatch/internal/infrastructure/websocket"
	"visionmatch/internal/usecase"
	"visionmatch/pkg/logger"
	"visionmatch/pkg/response"
)

// WebSocketHandler streams new negotiation messages of one request to the browser.
type WebSocketHandler struct {
	wsManager      *ws.Manager
	requestUseCase *usecase.ProjectRequestUseCase
	upgrader       gorillaws.Upgrader
}

func NewWebSocketHandler(wsManager *ws.Manager, requestUseCase *usecase.ProjectRequestUseCase, allowedOrigins []string) *WebSocketHandler {
	return &WebSocketHandler{
		wsManager:      wsManager,
		requestUseCase: requestUseCase,
		upgrader: gorillaws.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	}
}

func (h *WebSocketHandler) LiveMessages(c echo.Context) error {
	requestID := c.Param("id")
	if _, err := h.requestUseCase.GetRequest(c.Request().Context(), requestID); err != nil {
		return response.Error(c, err)
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		logger.Warn("Websocket upgrade failed for request %s: %v", requestID, err)
		return nil
	}

	client := ws.NewClient(requestID, conn)
	if !h.wsManager.Join(client) {
		conn.WriteMessage(gorillaws.CloseMessage, gorillaws.FormatCloseMessage(gorillaws.CloseGoingAway, "server shutting down"))
		conn.Close()
		return nil
	}

	go client.ReadPump(h.wsManager)
	go client.WritePump()

	return nil
}

func originChecker(allowed []string) func(r *http.Request) bool {
	set := make(map[string]struct{}, len(allowed))
	for _, origin := range allowed {
		if origin == "*" {
			return func(*http.Request) bool { return true }
		}
		set[origin] = struct{}{}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		_, ok := set[origin]
		return ok
	}
}
