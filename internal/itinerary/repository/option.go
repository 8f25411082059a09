package repository

import (
	"time"

	"travel-planner/internal/itinerary"
)

type CreateItemOptions struct {
	TripID          string
	UserID          string
	Title           string
	Type            itinerary.ItemType
	Location        string
	StartTime       time.Time
	EndTime         time.Time
	Notes           string
	CalendarEventID string
	CreatedAt       time.Time
}

// ListItemsOptions filters by trip and owner. Zero From/To and empty Type are ignored.
// Results are ordered by start time.
type ListItemsOptions struct {
	TripID string
	UserID string
	From   time.Time
	To     time.Time
	Type   itinerary.ItemType
}
