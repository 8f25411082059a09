package orchestrator

import (
	"context"

	"travel-planner/internal/agent"
	"travel-planner/internal/model"
)

// session returns the live session for id, creating it on first use.
// Access refreshes the idle TTL.
func (o *Orchestrator) session(sc model.Scope, id string) (*session, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	s, ok := o.sessions.Get(id)
	if !ok || s.closed() {
		ctx, cancel := context.WithCancel(context.Background())
		s = &session{id: id, owner: sc.UserID, ctx: ctx, cancel: cancel, memo: map[string]string{}}
	}
	if s.owner != sc.UserID {
		return nil, agent.ErrSessionForbidden
	}
	o.sessions.Add(id, s)
	return s, nil
}

// restore loads persisted history once per session. Callers hold s.mu.
func (o *Orchestrator) restore(ctx context.Context, s *session) {
	if s.loaded || o.store == nil {
		s.loaded = true
		return
	}
	s.loaded = true

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), storeTimeout)
	defer cancel()

	turns, err := o.store.Load(ctx, s.id, s.owner, maxSessionHistory)
	if err != nil {
		o.l.Warnf(ctx, "%s: restore %s: %v", LogPrefixStore, s.id, err)
		return
	}
	s.history = append(turns, s.history...)
}

func (o *Orchestrator) persist(ctx context.Context, s *session, turns ...agent.Turn) {
	if o.store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), storeTimeout)
	defer cancel()

	if err := o.store.Append(ctx, s.id, s.owner, turns...); err != nil {
		o.l.Warnf(ctx, "%s: append %s: %v", LogPrefixStore, s.id, err)
	}
}

// Clear wipes the conversation and tool state of a session.
func (o *Orchestrator) Clear(ctx context.Context, sc model.Scope, sessionID string) error {
	s, err := o.session(sc, sessionID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = nil
	s.memo = map[string]string{}
	s.loaded = true

	if o.store != nil {
		if err := o.store.Clear(ctx, sessionID, sc.UserID); err != nil {
			o.l.Errorf(ctx, "%s: clear %s: %v", LogPrefixStore, sessionID, err)
			return err
		}
	}
	return nil
}

// Close tears a session down. Outstanding calls are cancelled and their results discarded.
func (o *Orchestrator) Close(sessionID string) {
	if s, ok := o.sessions.Peek(sessionID); ok {
		s.cancel()
	}
	o.sessions.Remove(sessionID)
}

// History returns a copy of the session's turns, oldest first.
func (o *Orchestrator) History(ctx context.Context, sc model.Scope, sessionID string) ([]agent.Turn, error) {
	s, err := o.session(sc, sessionID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	o.restore(ctx, s)
	return append([]agent.Turn{}, s.history...), nil
}
