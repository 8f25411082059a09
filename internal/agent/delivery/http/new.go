package http

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"travel-planner/internal/agent"
	"travel-planner/pkg/log"
)

const (
	wsReadTimeout  = 60 * time.Second
	wsPingInterval = 25 * time.Second
	wsWriteTimeout = 10 * time.Second
	wsQueueSize    = 8
	wsMaxFrame     = 16 << 10
)

type handler struct {
	l         log.Logger
	assistant agent.Assistant
	upgrader  websocket.Upgrader
}

// New creates a new HTTP handler for chat sessions. allowOrigin decides which
// browser origins may open a websocket; nil accepts all.
func New(l log.Logger, assistant agent.Assistant, allowOrigin func(origin string) bool) *handler {
	return &handler{
		l:         l,
		assistant: assistant,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				if allowOrigin == nil {
					return true
				}
				origin := r.Header.Get("Origin")
				return origin == "" || allowOrigin(origin)
			},
		},
	}
}
