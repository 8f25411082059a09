package http

import (
	"github.com/gin-gonic/gin"

	"travel-planner/internal/middleware"
	"travel-planner/internal/model"
)

func (h *handler) scope(c *gin.Context) (model.Scope, error) {
	sc, ok := middleware.GetScope(c.Request.Context())
	if !ok {
		return sc, errUnauthorized
	}
	return sc, nil
}

func (h *handler) bindJSON(c *gin.Context, dst any, method string) (model.Scope, error) {
	sc, err := h.scope(c)
	if err != nil {
		return sc, err
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		h.l.Warnf(c.Request.Context(), "checklist.delivery.http.%s: %v", method, err)
		return sc, errWrongBody
	}
	return sc, nil
}

func (h *handler) bindQuery(c *gin.Context, method string) (categoryQuery, model.Scope, error) {
	var q categoryQuery
	sc, err := h.scope(c)
	if err != nil {
		return q, sc, err
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		h.l.Warnf(c.Request.Context(), "checklist.delivery.http.%s: %v", method, err)
		return q, sc, errWrongBody
	}
	return q, sc, nil
}
