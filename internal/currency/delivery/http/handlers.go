package http

import (
	"github.com/gin-gonic/gin"

	"travel-planner/pkg/response"
)

// Rates godoc
// @Summary     Exchange rates
// @Description Units of each currency per 1 USD. Served from the static table when the live source is unavailable.
// @Tags        Currency
// @Produce     json
// @Param       codes query string false "Comma separated codes, e.g. EUR,JPY"
// @Success     200 {object} ratesResp
// @Router      /api/v1/currency/rates [GET]
func (h *handler) Rates(c *gin.Context) {
	ctx := c.Request.Context()
	var req ratesReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "currency.delivery.http.Rates: %v", err)
		response.Error(c, errWrongQuery)
		return
	}

	h.refresh(c)
	response.OK(c, newRatesResp(h.svc.Status(), h.svc.Rates(), req.codes()))
}

// Convert godoc
// @Summary     Convert an amount
// @Description amount / rate[from] * rate[to]. Unknown codes use a rate of 1.0 and are listed in unknown_codes.
// @Tags        Currency
// @Accept      json
// @Produce     json
// @Param       body body convertReq true "Conversion"
// @Success     200 {object} convertResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/currency/convert [POST]
func (h *handler) Convert(c *gin.Context) {
	ctx := c.Request.Context()
	var req convertReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "currency.delivery.http.Convert: %v", err)
		response.Error(c, errWrongBody)
		return
	}

	h.refresh(c)
	response.OK(c, newConvertResp(h.svc.Convert(ctx, *req.Amount, req.From, req.To)))
}

// refresh updates the table when stale. Failures only mean older rates are served.
func (h *handler) refresh(c *gin.Context) {
	ctx := c.Request.Context()
	if res := h.svc.RefreshIfStale(ctx, h.now()); res.Attempted && res.Err != nil {
		h.l.Infof(ctx, "currency.delivery.http: serving cached rates: %v", res.Err)
	}
}
