package repository

import "travel-planner/internal/agent"

type LoadTurnsOptions struct {
	SessionID string
	UserID    string
	Limit     int
}

type AppendTurnsOptions struct {
	SessionID string
	UserID    string
	Turns     []agent.Turn
}

type ClearTurnsOptions struct {
	SessionID string
	UserID    string
}
