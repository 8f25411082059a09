package repository

import (
	"context"

	"travel-planner/internal/itinerary"
)

// Repository is the data store for itinerary items.
type Repository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (itinerary.Item, error)
	ListItems(ctx context.Context, opt ListItemsOptions) ([]itinerary.Item, error)
}
