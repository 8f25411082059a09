package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"travel-planner/internal/middleware"
	"travel-planner/internal/model"
)

// session reads the principal and the :id path parameter.
func (h *handler) session(c *gin.Context) (model.Scope, string, error) {
	sc, ok := middleware.GetScope(c.Request.Context())
	if !ok {
		return sc, "", errUnauthorized
	}
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return sc, "", errSessionRequired
	}
	return sc, id, nil
}
