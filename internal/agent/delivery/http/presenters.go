package http

import (
	"travel-planner/internal/agent"
	"travel-planner/internal/model"
	"travel-planner/pkg/response"
)

// --- Request DTOs ---

type sendMessageReq struct {
	Message string `json:"message" binding:"required,max=4000"`
	TripID  string `json:"trip_id"`
}

func (r sendMessageReq) toInput(sc model.Scope, sessionID string) agent.ProcessInput {
	return agent.ProcessInput{SessionID: sessionID, Scope: sc, TripID: r.TripID, Message: r.Message}
}

// --- Response DTOs ---

type replyResp struct {
	Text       string            `json:"text"`
	Source     string            `json:"source"`
	Tool       string            `json:"tool,omitempty"`
	Intent     string            `json:"intent"`
	Confidence float64           `json:"confidence"`
	Fields     map[string]string `json:"fields,omitempty"`
	Failure    string            `json:"failure,omitempty"`
}

func newReplyResp(r agent.Reply) replyResp {
	return replyResp{
		Text:       r.Text,
		Source:     r.Source,
		Tool:       r.Tool,
		Intent:     string(r.Intent),
		Confidence: r.Confidence,
		Fields:     r.Fields,
		Failure:    string(r.Failure),
	}
}

type turnResp struct {
	Role      string            `json:"role"`
	Content   string            `json:"content"`
	CreatedAt response.DateTime `json:"created_at"`
}

type historyResp struct {
	SessionID string     `json:"session_id"`
	Turns     []turnResp `json:"turns"`
}

func newHistoryResp(sessionID string, turns []agent.Turn) historyResp {
	out := historyResp{SessionID: sessionID, Turns: make([]turnResp, 0, len(turns))}
	for _, t := range turns {
		out.Turns = append(out.Turns, turnResp{Role: t.Role, Content: t.Content, CreatedAt: response.DateTime(t.CreatedAt)})
	}
	return out
}

// --- Websocket frames ---

const (
	frameReply = "reply"
	frameError = "error"
)

type wsRequest struct {
	Message string `json:"message"`
	TripID  string `json:"trip_id"`
}

type wsResponse struct {
	Type      string     `json:"type"`
	Reply     *replyResp `json:"reply,omitempty"`
	ErrorCode int        `json:"error_code,omitempty"`
	Message   string     `json:"message,omitempty"`
}
