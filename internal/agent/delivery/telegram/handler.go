package telegram

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"travel-planner/internal/agent"
	"travel-planner/internal/model"
	"travel-planner/pkg/response"
	pkgTelegram "travel-planner/pkg/telegram"
)

const helpText = `Ask me about your trip in plain words:
• "convert 50 EUR to JPY"
• "weather in Kyoto"
• "add dinner 42 EUR to expenses"
• "what's on my itinerary tomorrow?"

/trip <id> binds this chat to a trip, /clear forgets the conversation.`

// HandleWebhook godoc
// @Summary     Telegram webhook
// @Description Accepts a Telegram update and answers it in the background through the chat assistant.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /webhook/telegram [POST]
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if h.secret != "" {
		got := c.GetHeader(pkgTelegram.SecretHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(h.secret)) != 1 {
			h.l.Warnf(ctx, "agent.delivery.telegram.HandleWebhook: bad secret token")
			response.Unauthorized(c)
			return
		}
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Warnf(ctx, "agent.delivery.telegram.HandleWebhook: %v", err)
		response.Error(c, errWrongBody)
		return
	}

	msg := update.Message
	if msg == nil || msg.Chat == nil || msg.From == nil || msg.From.IsBot || strings.TrimSpace(msg.Text) == "" {
		response.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Telegram retries updates that take too long to acknowledge.
	bg := context.WithoutCancel(ctx)
	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		h.answer(bg, msg)
	}()

	response.OK(c, map[string]string{"status": "accepted"})
}

func (h *handler) answer(ctx context.Context, msg *pkgTelegram.Message) {
	text, err := h.reply(ctx, msg)
	if err != nil {
		if errors.Is(err, agent.ErrSessionClosed) {
			return
		}
		h.l.Errorf(ctx, "agent.delivery.telegram.answer: chat %d: %v", msg.Chat.ID, err)
		text = msgFailed
		if errors.Is(err, agent.ErrSessionForbidden) {
			text = msgBusy
		}
	}
	if text == "" {
		return
	}
	if err := h.bot.SendMessage(ctx, msg.Chat.ID, text); err != nil {
		h.l.Errorf(ctx, "agent.delivery.telegram.answer: send to chat %d: %v", msg.Chat.ID, err)
	}
}

func (h *handler) reply(ctx context.Context, msg *pkgTelegram.Message) (string, error) {
	sc := model.Scope{
		UserID:   fmt.Sprintf("telegram_%d", msg.From.ID),
		Username: msg.From.Username,
	}
	sessionID := fmt.Sprintf("telegram_%d_%d", msg.Chat.ID, msg.From.ID)
	text := strings.TrimSpace(msg.Text)

	if cmd, arg, ok := command(text); ok {
		switch cmd {
		case "/start", "/help":
			return helpText, nil
		case "/clear":
			if err := h.assistant.Clear(ctx, sc, sessionID); err != nil {
				return "", err
			}
			return "Conversation cleared.", nil
		case "/trip":
			if arg == "" {
				if trip, ok := h.trips.Get(sessionID); ok {
					return fmt.Sprintf("This chat is bound to trip %s.", trip), nil
				}
				return "No trip bound. Send /trip <id>.", nil
			}
			h.trips.Add(sessionID, arg)
			return fmt.Sprintf("Using trip %s.", arg), nil
		}
	}

	in := agent.ProcessInput{
		SessionID: sessionID,
		Scope:     sc,
		Message:   text,
	}
	if trip, ok := h.trips.Get(sessionID); ok {
		in.TripID = trip
	}

	reply, err := h.assistant.Process(ctx, in)
	if err != nil {
		return "", err
	}
	return reply.Text, nil
}

// command splits "/cmd@bot arg" into "/cmd" and "arg".
func command(text string) (string, string, bool) {
	if !strings.HasPrefix(text, "/") {
		return "", "", false
	}
	head, arg, _ := strings.Cut(text, " ")
	head, _, _ = strings.Cut(head, "@")
	return strings.ToLower(head), strings.TrimSpace(arg), true
}
