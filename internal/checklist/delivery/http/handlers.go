package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travel-planner/internal/checklist"
	"travel-planner/pkg/response"
)

// Add godoc
// @Summary     Add a packing item
// @Tags        Packing
// @Accept      json
// @Produce     json
// @Param       trip_id path string true "Trip ID"
// @Param       body    body addReq true "Item"
// @Success     201 {object} itemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/trips/{trip_id}/packing [POST]
func (h *handler) Add(c *gin.Context) {
	ctx := c.Request.Context()

	var req addReq
	sc, err := h.bindJSON(c, &req, "Add")
	if err != nil {
		response.Error(c, err)
		return
	}

	item, err := h.uc.Add(ctx, checklist.AddInput{Scope: sc, TripID: c.Param("trip_id"), Name: req.Name, Category: req.Category})
	if err != nil {
		h.l.Errorf(ctx, "checklist.delivery.http.Add: %v", err)
		h.replyError(c, err)
		return
	}

	response.Created(c, newItemResp(item))
}

// List godoc
// @Summary     List packing items
// @Tags        Packing
// @Produce     json
// @Param       trip_id  path  string true  "Trip ID"
// @Param       category query string false "Category filter"
// @Success     200 {object} listResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/trips/{trip_id}/packing [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	q, sc, err := h.bindQuery(c, "List")
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.List(ctx, checklist.ListInput{Scope: sc, TripID: c.Param("trip_id"), Category: q.Category})
	if err != nil {
		h.l.Errorf(ctx, "checklist.delivery.http.List: %v", err)
		h.replyError(c, err)
		return
	}

	response.OK(c, h.newListResp(out))
}

// SetPacked godoc
// @Summary     Mark an item packed or unpacked
// @Tags        Packing
// @Accept      json
// @Produce     json
// @Param       trip_id path string       true "Trip ID"
// @Param       id      path string       true "Item ID"
// @Param       body    body setPackedReq true "State"
// @Success     200 {object} itemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/trips/{trip_id}/packing/{id} [PATCH]
func (h *handler) SetPacked(c *gin.Context) {
	ctx := c.Request.Context()

	var req setPackedReq
	sc, err := h.bindJSON(c, &req, "SetPacked")
	if err != nil {
		response.Error(c, err)
		return
	}

	item, err := h.uc.SetPacked(ctx, checklist.SetPackedInput{
		Scope:  sc,
		TripID: c.Param("trip_id"),
		ID:     c.Param("id"),
		Packed: *req.Packed,
	})
	if err != nil {
		h.l.Errorf(ctx, "checklist.delivery.http.SetPacked: %v", err)
		h.replyError(c, err)
		return
	}

	response.OK(c, newItemResp(item))
}

// Import godoc
// @Summary     Import a markdown checklist
// @Description Each "- [ ]" or "- [x]" line becomes an item; headings set the category. Names already listed are skipped.
// @Tags        Packing
// @Accept      json
// @Produce     json
// @Param       trip_id path string    true "Trip ID"
// @Param       body    body importReq true "Markdown"
// @Success     201 {object} importResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/trips/{trip_id}/packing/import [POST]
func (h *handler) Import(c *gin.Context) {
	ctx := c.Request.Context()

	var req importReq
	sc, err := h.bindJSON(c, &req, "Import")
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Import(ctx, checklist.ImportInput{Scope: sc, TripID: c.Param("trip_id"), Markdown: req.Markdown})
	if err != nil {
		h.l.Errorf(ctx, "checklist.delivery.http.Import: %v", err)
		h.replyError(c, err)
		return
	}

	response.Created(c, h.newImportResp(out))
}

// Export godoc
// @Summary     Export the packing list as markdown
// @Tags        Packing
// @Produce     plain
// @Param       trip_id path string true "Trip ID"
// @Success     200 {string} string
// @Router      /api/v1/trips/{trip_id}/packing/export [GET]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Export(ctx, checklist.ExportInput{Scope: sc, TripID: c.Param("trip_id")})
	if err != nil {
		h.l.Errorf(ctx, "checklist.delivery.http.Export: %v", err)
		h.replyError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(out.Markdown))
}

// Progress godoc
// @Summary     Packing progress
// @Tags        Packing
// @Produce     json
// @Param       trip_id  path  string true  "Trip ID"
// @Param       category query string false "Category filter"
// @Success     200 {object} progressSummaryResp
// @Router      /api/v1/trips/{trip_id}/packing/progress [GET]
func (h *handler) Progress(c *gin.Context) {
	ctx := c.Request.Context()

	q, sc, err := h.bindQuery(c, "Progress")
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Progress(ctx, checklist.ProgressInput{Scope: sc, TripID: c.Param("trip_id"), Category: q.Category})
	if err != nil {
		h.l.Errorf(ctx, "checklist.delivery.http.Progress: %v", err)
		h.replyError(c, err)
		return
	}

	response.OK(c, h.newProgressSummaryResp(out))
}

// Suggest godoc
// @Summary     Packing suggestions
// @Description Template items per category that are not yet on the list.
// @Tags        Packing
// @Produce     json
// @Param       trip_id  path  string true  "Trip ID"
// @Param       category query string false "Category"
// @Success     200 {object} suggestResp
// @Router      /api/v1/trips/{trip_id}/packing/suggestions [GET]
func (h *handler) Suggest(c *gin.Context) {
	ctx := c.Request.Context()

	q, sc, err := h.bindQuery(c, "Suggest")
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Suggest(ctx, checklist.SuggestInput{Scope: sc, TripID: c.Param("trip_id"), Category: q.Category})
	if err != nil {
		h.l.Errorf(ctx, "checklist.delivery.http.Suggest: %v", err)
		h.replyError(c, err)
		return
	}

	response.OK(c, h.newSuggestResp(out))
}
