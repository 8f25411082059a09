package usecase

import (
	"context"
	"time"

	"travel-planner/internal/itinerary"
	"travel-planner/internal/itinerary/repository"
	"travel-planner/pkg/datemath"
	"travel-planner/pkg/gcalendar"
	"travel-planner/pkg/log"
)

const defaultDuration = time.Hour

// Calendar is the optional external calendar items are mirrored to.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// Config holds the calendar target.
type Config struct {
	CalendarID string
}

type implUseCase struct {
	repo     repository.Repository
	calendar Calendar
	dates    *datemath.Parser
	cfg      Config
	l        log.Logger
	now      func() time.Time
}

var _ itinerary.UseCase = (*implUseCase)(nil)

// New creates the itinerary UseCase. calendar may be nil, in which case sync requests are reported as not synced.
func New(repo repository.Repository, calendar Calendar, dates *datemath.Parser, cfg Config, l log.Logger) itinerary.UseCase {
	return &implUseCase{
		repo:     repo,
		calendar: calendar,
		dates:    dates,
		cfg:      cfg,
		l:        l,
		now:      time.Now,
	}
}
