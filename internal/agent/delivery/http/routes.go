package http

import (
	"github.com/gin-gonic/gin"

	"travel-planner/internal/middleware"
)

// RegisterRoutes mounts the chat session routes.
func RegisterRoutes(r *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	sessions := r.Group("/chat/sessions/:id", mw.Auth())
	{
		sessions.POST("/messages", mw.RateLimit(), h.SendMessage)
		sessions.GET("/history", h.History)
		sessions.DELETE("/history", h.ClearHistory)
		sessions.DELETE("", h.CloseSession)
		sessions.GET("/ws", h.Stream)
	}
}
