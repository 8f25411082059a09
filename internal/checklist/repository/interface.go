package repository

import (
	"context"

	"travel-planner/internal/checklist"
)

// Repository is the data store for packing items.
type Repository interface {
	CreateItems(ctx context.Context, opts []CreateItemOptions) ([]checklist.PackingItem, error)
	ListItems(ctx context.Context, opt ListItemsOptions) ([]checklist.PackingItem, error)
	// UpdatePacked returns ErrNotFound when no item matches ID, TripID and UserID.
	UpdatePacked(ctx context.Context, opt UpdatePackedOptions) (checklist.PackingItem, error)
}
