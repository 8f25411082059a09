package itinerary

import (
	"strings"
	"time"

	"travel-planner/internal/model"
	"travel-planner/pkg/datemath"
)

// ItemType is the kind of itinerary entry.
type ItemType string

const (
	TypeSightseeing   ItemType = "sightseeing"
	TypeDining        ItemType = "dining"
	TypeAccommodation ItemType = "accommodation"
	TypeOther         ItemType = "other"
)

// ParseItemType matches case-insensitively; anything unknown is other.
func ParseItemType(s string) ItemType {
	switch t := ItemType(strings.ToLower(strings.TrimSpace(s))); t {
	case TypeSightseeing, TypeDining, TypeAccommodation:
		return t
	}
	return TypeOther
}

// Item is one scheduled entry of a trip.
type Item struct {
	ID              string
	TripID          string
	UserID          string
	Title           string
	Type            ItemType
	Location        string
	StartTime       time.Time
	EndTime         time.Time
	Notes           string
	CalendarEventID string
	CreatedAt       time.Time
}

// --- UseCase Inputs ---

type CreateInput struct {
	Scope     model.Scope
	TripID    string
	Title     string
	Type      string
	Location  string
	StartTime time.Time
	// EndTime defaults to one hour after StartTime.
	EndTime      time.Time
	Notes        string
	SyncCalendar bool
}

type ListInput struct {
	Scope  model.Scope
	TripID string
	// When is a period keyword (today, tomorrow, tonight, morning, afternoon,
	// evening, this week, next week). Empty lists everything.
	When string
	// Type filters by item type when set.
	Type string
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Item           Item
	CalendarSynced bool
	// CalendarError explains a failed sync; the item is saved regardless.
	CalendarError string
}

type ListOutput struct {
	Items  []Item
	Window *datemath.Window
}
