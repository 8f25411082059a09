package http

import (
	"github.com/gin-gonic/gin"

	"travel-planner/internal/middleware"
	"travel-planner/internal/model"
)

func (h *handler) processCreateReq(c *gin.Context) (createReq, model.Scope, error) {
	sc, ok := middleware.GetScope(c.Request.Context())
	if !ok {
		return createReq{}, sc, errUnauthorized
	}

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "itinerary.delivery.http.processCreateReq: %v", err)
		return req, sc, errWrongBody
	}
	req.TripID = c.Param("trip_id")
	return req, sc, nil
}

func (h *handler) processListReq(c *gin.Context) (listReq, model.Scope, error) {
	sc, ok := middleware.GetScope(c.Request.Context())
	if !ok {
		return listReq{}, sc, errUnauthorized
	}

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "itinerary.delivery.http.processListReq: %v", err)
		return req, sc, errWrongBody
	}
	req.TripID = c.Param("trip_id")
	return req, sc, nil
}
