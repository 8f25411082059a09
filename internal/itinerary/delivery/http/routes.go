package http

import (
	"github.com/gin-gonic/gin"

	"travel-planner/internal/middleware"
)

// RegisterRoutes mounts the itinerary routes under a /trips/:trip_id group.
func RegisterRoutes(trip *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	items := trip.Group("/itinerary", mw.Auth(), mw.RateLimit())
	{
		items.POST("", h.Create)
		items.GET("", h.List)
	}
}
