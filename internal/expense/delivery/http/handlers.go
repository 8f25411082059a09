package http

import (
	"github.com/gin-gonic/gin"

	"travel-planner/pkg/response"
)

// Create godoc
// @Summary     Log an expense
// @Description Stores the amount in USD together with the original amount and the rate used.
// @Tags        Expenses
// @Accept      json
// @Produce     json
// @Param       trip_id path string    true "Trip ID"
// @Param       body    body createReq true "Expense"
// @Success     201 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/trips/{trip_id}/expenses [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput(sc))
	if err != nil {
		h.l.Errorf(ctx, "expense.delivery.http.Create: %v", err)
		h.replyError(c, err)
		return
	}

	response.Created(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List trip expenses
// @Description Lists expenses with each amount rendered in the display currency.
// @Tags        Expenses
// @Produce     json
// @Param       trip_id  path  string true  "Trip ID"
// @Param       currency query string false "Display currency (default USD)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/trips/{trip_id}/expenses [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toListInput(sc))
	if err != nil {
		h.l.Errorf(ctx, "expense.delivery.http.List: %v", err)
		h.replyError(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Summary godoc
// @Summary     Expense totals by category
// @Tags        Expenses
// @Produce     json
// @Param       trip_id  path  string true  "Trip ID"
// @Param       currency query string false "Display currency (default USD)"
// @Success     200 {object} summaryResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/trips/{trip_id}/expenses/summary [GET]
func (h *handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Summary(ctx, req.toSummaryInput(sc))
	if err != nil {
		h.l.Errorf(ctx, "expense.delivery.http.Summary: %v", err)
		h.replyError(c, err)
		return
	}

	response.OK(c, h.newSummaryResp(output))
}
