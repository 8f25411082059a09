package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travel-planner/pkg/response"
)

// SendMessage godoc
// @Summary     Send a chat message
// @Description Answers with a travel tool or the chat model. Messages of one session are handled in order.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       id   path string         true "Session ID"
// @Param       body body sendMessageReq true "Message"
// @Success     200 {object} replyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     409 {object} response.Resp "Session closed"
// @Router      /api/v1/chat/sessions/{id}/messages [POST]
func (h *handler) SendMessage(c *gin.Context) {
	ctx := c.Request.Context()
	sc, id, err := h.session(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req sendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "agent.delivery.http.SendMessage: %v", err)
		response.Error(c, errWrongBody)
		return
	}

	reply, err := h.assistant.Process(ctx, req.toInput(sc, id))
	if err != nil {
		h.l.Warnf(ctx, "agent.delivery.http.SendMessage: %v", err)
		h.replyError(c, err)
		return
	}
	response.OK(c, newReplyResp(reply))
}

// History godoc
// @Summary     Chat history
// @Description Turns answered by the chat model, oldest first. Tool answers are not kept.
// @Tags        Chat
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} historyResp
// @Failure     403 {object} response.Resp "Forbidden"
// @Router      /api/v1/chat/sessions/{id}/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()
	sc, id, err := h.session(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	turns, err := h.assistant.History(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "agent.delivery.http.History: %v", err)
		h.replyError(c, err)
		return
	}
	response.OK(c, newHistoryResp(id, turns))
}

// ClearHistory godoc
// @Summary     Clear a chat session
// @Description Forgets the conversation and any remembered tool context.
// @Tags        Chat
// @Param       id path string true "Session ID"
// @Success     204
// @Failure     403 {object} response.Resp "Forbidden"
// @Router      /api/v1/chat/sessions/{id}/history [DELETE]
func (h *handler) ClearHistory(c *gin.Context) {
	ctx := c.Request.Context()
	sc, id, err := h.session(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.assistant.Clear(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "agent.delivery.http.ClearHistory: %v", err)
		h.replyError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CloseSession godoc
// @Summary     Close a chat session
// @Description Cancels any outstanding answer. Stored history is kept.
// @Tags        Chat
// @Param       id path string true "Session ID"
// @Success     204
// @Failure     403 {object} response.Resp "Forbidden"
// @Router      /api/v1/chat/sessions/{id} [DELETE]
func (h *handler) CloseSession(c *gin.Context) {
	ctx := c.Request.Context()
	sc, id, err := h.session(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	// ownership check before tearing down
	if _, err := h.assistant.History(ctx, sc, id); err != nil {
		h.replyError(c, err)
		return
	}
	h.assistant.Close(id)
	c.Status(http.StatusNoContent)
}
