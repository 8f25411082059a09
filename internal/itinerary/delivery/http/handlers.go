package http

import (
	"github.com/gin-gonic/gin"

	"travel-planner/pkg/response"
)

// Create godoc
// @Summary     Add an itinerary item
// @Description Saves the item and optionally mirrors it to Google Calendar. A failed calendar sync does not fail the request.
// @Tags        Itinerary
// @Accept      json
// @Produce     json
// @Param       trip_id path string    true "Trip ID"
// @Param       body    body createReq true "Item"
// @Success     201 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/trips/{trip_id}/itinerary [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput(sc))
	if err != nil {
		h.l.Errorf(ctx, "itinerary.delivery.http.Create: %v", err)
		h.replyError(c, err)
		return
	}

	response.Created(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List itinerary items
// @Description Lists items ordered by start time, optionally within a period such as "tomorrow" or "this week".
// @Tags        Itinerary
// @Produce     json
// @Param       trip_id path  string true  "Trip ID"
// @Param       when    query string false "Period keyword"
// @Param       type    query string false "sightseeing, dining, accommodation or other"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/trips/{trip_id}/itinerary [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput(sc))
	if err != nil {
		h.l.Errorf(ctx, "itinerary.delivery.http.List: %v", err)
		h.replyError(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}
