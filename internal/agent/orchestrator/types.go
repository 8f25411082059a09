package orchestrator

import (
	"context"
	"sync"
	"time"

	"travel-planner/internal/agent"
)

// Config tunes session handling.
type Config struct {
	SessionTTL    time.Duration
	MaxSessions   int
	HistoryWindow int // turns sent to the chat model
	SystemPrompt  string
	Timezone      string
	CallTimeout   time.Duration
}

func (c *Config) setDefaults() {
	if c.SessionTTL <= 0 {
		c.SessionTTL = DefaultSessionTTL
	}
	if c.MaxSessions <= 0 {
		c.MaxSessions = DefaultMaxSessions
	}
	if c.HistoryWindow <= 0 {
		c.HistoryWindow = DefaultHistoryWindow
	}
	if c.SystemPrompt == "" {
		c.SystemPrompt = DefaultSystemPrompt
	}
	if c.Timezone == "" {
		c.Timezone = DefaultTimezone
	}
	if c.CallTimeout <= 0 {
		c.CallTimeout = DefaultCallTimeout
	}
}

// HistoryStore persists conversation turns per session and owner.
type HistoryStore interface {
	Load(ctx context.Context, sessionID, userID string, limit int) ([]agent.Turn, error)
	Append(ctx context.Context, sessionID, userID string, turns ...agent.Turn) error
	Clear(ctx context.Context, sessionID, userID string) error
}

// session is one conversation. mu serialises utterances; ctx is cancelled on teardown.
type session struct {
	id    string
	owner string

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	loaded  bool
	history []agent.Turn
	memo    map[string]string
}

func (s *session) closed() bool {
	return s.ctx.Err() != nil
}

func (s *session) appendTurns(turns ...agent.Turn) {
	s.history = append(s.history, turns...)
	if over := len(s.history) - maxSessionHistory; over > 0 {
		s.history = append([]agent.Turn(nil), s.history[over:]...)
	}
}

func (s *session) window(n int) []agent.Turn {
	if len(s.history) <= n {
		return s.history
	}
	return s.history[len(s.history)-n:]
}
