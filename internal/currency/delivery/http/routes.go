package http

import (
	"github.com/gin-gonic/gin"

	"travel-planner/internal/middleware"
)

// RegisterRoutes mounts the currency routes. They carry no user data and need no auth.
func RegisterRoutes(r *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	cur := r.Group("/currency", mw.RateLimit())
	{
		cur.GET("/rates", h.Rates)
		cur.POST("/convert", h.Convert)
	}
}
