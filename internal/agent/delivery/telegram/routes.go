package telegram

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the webhook. Telegram authenticates with the secret
// token header, so the route sits outside the API auth middleware.
func RegisterRoutes(r gin.IRouter, h *handler) {
	r.POST("/webhook/telegram", h.HandleWebhook)
}
