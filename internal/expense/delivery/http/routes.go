package http

import (
	"github.com/gin-gonic/gin"

	"travel-planner/internal/middleware"
)

// RegisterRoutes mounts the expense routes under a /trips/:trip_id group.
func RegisterRoutes(trip *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	expenses := trip.Group("/expenses", mw.Auth(), mw.RateLimit())
	{
		expenses.POST("", h.Create)
		expenses.GET("", h.List)
		expenses.GET("/summary", h.Summary)
	}
}
