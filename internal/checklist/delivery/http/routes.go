package http

import (
	"github.com/gin-gonic/gin"

	"travel-planner/internal/middleware"
)

// RegisterRoutes mounts the packing routes under a /trips/:trip_id group.
func RegisterRoutes(trip *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	packing := trip.Group("/packing", mw.Auth(), mw.RateLimit())
	{
		packing.POST("", h.Add)
		packing.GET("", h.List)
		packing.POST("/import", h.Import)
		packing.GET("/export", h.Export)
		packing.GET("/progress", h.Progress)
		packing.GET("/suggestions", h.Suggest)
		packing.PATCH("/:id", h.SetPacked)
	}
}
