package repository

import (
	"context"

	"travel-planner/internal/agent"
)

//go:generate mockery --name Repository
type Repository interface {
	// LoadTurns returns up to limit of the newest turns, oldest first.
	LoadTurns(ctx context.Context, opt LoadTurnsOptions) ([]agent.Turn, error)
	AppendTurns(ctx context.Context, opt AppendTurnsOptions) error
	ClearTurns(ctx context.Context, opt ClearTurnsOptions) error
}
