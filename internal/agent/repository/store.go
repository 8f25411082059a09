package repository

import (
	"context"

	"travel-planner/internal/agent"
)

// HistoryStore adapts a Repository to the orchestrator's session store.
type HistoryStore struct {
	Repo Repository
}

func (h HistoryStore) Load(ctx context.Context, sessionID, userID string, limit int) ([]agent.Turn, error) {
	return h.Repo.LoadTurns(ctx, LoadTurnsOptions{SessionID: sessionID, UserID: userID, Limit: limit})
}

func (h HistoryStore) Append(ctx context.Context, sessionID, userID string, turns ...agent.Turn) error {
	if len(turns) == 0 {
		return nil
	}
	return h.Repo.AppendTurns(ctx, AppendTurnsOptions{SessionID: sessionID, UserID: userID, Turns: turns})
}

func (h HistoryStore) Clear(ctx context.Context, sessionID, userID string) error {
	return h.Repo.ClearTurns(ctx, ClearTurnsOptions{SessionID: sessionID, UserID: userID})
}
