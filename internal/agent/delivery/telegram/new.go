package telegram

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"travel-planner/internal/agent"
	"travel-planner/pkg/log"
)

const (
	tripBindingCapacity = 10000
	tripBindingTTL      = 30 * 24 * time.Hour
)

// Sender delivers text to a Telegram chat. *telegram.Bot satisfies it.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

type handler struct {
	l         log.Logger
	assistant agent.Assistant
	bot       Sender
	secret    string

	// trips holds the trip bound to each chat with /trip.
	trips *expirable.LRU[string, string]
	wg    sync.WaitGroup
}

// New creates the Telegram webhook handler. An empty secret disables the
// secret token check.
func New(l log.Logger, assistant agent.Assistant, bot Sender, secret string) *handler {
	return &handler{
		l:         l,
		assistant: assistant,
		bot:       bot,
		secret:    secret,
		trips:     expirable.NewLRU[string, string](tripBindingCapacity, nil, tripBindingTTL),
	}
}

// Wait blocks until updates already accepted have been answered.
func (h *handler) Wait() {
	h.wg.Wait()
}
