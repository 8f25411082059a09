package repository

import (
	"time"

	"travel-planner/internal/checklist"
)

type CreateItemOptions struct {
	TripID    string
	UserID    string
	Name      string
	Category  checklist.Category
	Packed    bool
	CreatedAt time.Time
}

// ListItemsOptions filters by trip and owner; an empty Category is ignored.
// Results keep insertion order.
type ListItemsOptions struct {
	TripID   string
	UserID   string
	Category checklist.Category
}

type UpdatePackedOptions struct {
	ID     string
	TripID string
	UserID string
	Packed bool
}
