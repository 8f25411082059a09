package http

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"travel-planner/internal/agent"
	"travel-planner/internal/model"
	pkgErrors "travel-planner/pkg/errors"
	"travel-planner/pkg/response"
)

// Stream godoc
// @Summary     Chat over a websocket
// @Description Send {"message","trip_id"} frames; each is answered with a "reply" or "error" frame, one at a time.
// @Description Disconnecting closes the session and drops any answer still being prepared.
// @Tags        Chat
// @Param       id path string true "Session ID"
// @Success     101
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/chat/sessions/{id}/ws [GET]
func (h *handler) Stream(c *gin.Context) {
	sc, id, err := h.session(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.l.Warnf(c.Request.Context(), "agent.delivery.http.Stream: upgrade: %v", err)
		return
	}
	defer conn.Close()

	// The request context is not cancelled for hijacked connections.
	ctx, cancel := context.WithCancel(context.WithoutCancel(c.Request.Context()))
	defer cancel()

	inbox := make(chan wsRequest, wsQueueSize)
	go h.readFrames(ctx, cancel, conn, inbox)

	h.serveFrames(ctx, conn, sc, id, inbox)
	h.assistant.Close(id)
	h.l.Infof(ctx, "agent.delivery.http.Stream: session %s disconnected", id)
}

// readFrames pumps client frames into inbox until the connection fails.
func (h *handler) readFrames(ctx context.Context, cancel context.CancelFunc, conn *websocket.Conn, inbox chan<- wsRequest) {
	defer cancel()
	defer close(inbox)

	conn.SetReadLimit(wsMaxFrame)
	_ = conn.SetReadDeadline(time.Now().Add(wsReadTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsReadTimeout))
	})

	for {
		var req wsRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.l.Warnf(ctx, "agent.delivery.http.readFrames: %v", err)
			}
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(wsReadTimeout))

		select {
		case inbox <- req:
		case <-ctx.Done():
			return
		}
	}
}

// serveFrames answers queued frames in order. It is the only writer on conn.
func (h *handler) serveFrames(ctx context.Context, conn *websocket.Conn, sc model.Scope, id string, inbox <-chan wsRequest) {
	ping := time.NewTicker(wsPingInterval)
	defer ping.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ping.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteTimeout)); err != nil {
				return
			}
		case req, ok := <-inbox:
			if !ok {
				return
			}
			reply, err := h.assistant.Process(ctx, agent.ProcessInput{SessionID: id, Scope: sc, TripID: req.TripID, Message: req.Message})
			if errors.Is(err, agent.ErrSessionClosed) {
				return
			}
			if err := h.writeFrame(conn, newFrame(h.mapError(err), reply, err)); err != nil {
				h.l.Warnf(ctx, "agent.delivery.http.serveFrames: write: %v", err)
				return
			}
		}
	}
}

func newFrame(mapped error, reply agent.Reply, err error) wsResponse {
	if err == nil {
		r := newReplyResp(reply)
		return wsResponse{Type: frameReply, Reply: &r}
	}
	var httpErr *pkgErrors.HTTPError
	if errors.As(mapped, &httpErr) {
		return wsResponse{Type: frameError, ErrorCode: httpErr.Code, Message: httpErr.Message}
	}
	return wsResponse{Type: frameError, ErrorCode: response.InternalServerErrorCode, Message: response.DefaultErrorMessage}
}

func (h *handler) writeFrame(conn *websocket.Conn, frame wsResponse) error {
	_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	return conn.WriteJSON(frame)
}
