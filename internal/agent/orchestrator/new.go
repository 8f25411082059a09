package orchestrator

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"travel-planner/internal/agent"
	"travel-planner/internal/router"
	"travel-planner/pkg/llmprovider"
	"travel-planner/pkg/log"
)

// Orchestrator answers chat utterances with a tool or the chat model.
type Orchestrator struct {
	router   router.Router
	registry *agent.ToolRegistry
	llm      llmprovider.Generator
	store    HistoryStore
	cfg      Config
	loc      *time.Location
	l        log.Logger
	now      func() time.Time

	mu       sync.Mutex // guards get-or-create of sessions
	sessions *expirable.LRU[string, *session]
}

var _ agent.Assistant = (*Orchestrator)(nil)

// New creates an Orchestrator. store may be nil for memory-only sessions.
func New(r router.Router, registry *agent.ToolRegistry, llm llmprovider.Generator, store HistoryStore, cfg Config, l log.Logger) *Orchestrator {
	cfg.setDefaults()

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		l.Warnf(context.Background(), "%s: invalid timezone %q, using UTC: %v", LogPrefixSession, cfg.Timezone, err)
		loc = time.UTC
	}

	o := &Orchestrator{
		router:   r,
		registry: registry,
		llm:      llm,
		store:    store,
		cfg:      cfg,
		loc:      loc,
		l:        l,
		now:      time.Now,
	}
	o.sessions = expirable.NewLRU[string, *session](cfg.MaxSessions, func(_ string, s *session) {
		s.cancel()
	}, cfg.SessionTTL)
	return o
}
