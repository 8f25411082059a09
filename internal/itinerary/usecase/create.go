package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"travel-planner/internal/itinerary"
	repo "travel-planner/internal/itinerary/repository"
	"travel-planner/pkg/gcalendar"
)

var errCalendarNotConfigured = errors.New("calendar sync is not configured")

// Create stores an item, mirroring it to the calendar first when asked.
// A failed sync is reported in the output and never blocks the save.
func (uc *implUseCase) Create(ctx context.Context, input itinerary.CreateInput) (itinerary.CreateOutput, error) {
	if strings.TrimSpace(input.TripID) == "" {
		return itinerary.CreateOutput{}, itinerary.ErrTripRequired
	}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return itinerary.CreateOutput{}, itinerary.ErrTitleRequired
	}
	if input.StartTime.IsZero() {
		return itinerary.CreateOutput{}, itinerary.ErrStartRequired
	}
	end := input.EndTime
	if end.IsZero() {
		end = input.StartTime.Add(defaultDuration)
	}
	if !end.After(input.StartTime) {
		return itinerary.CreateOutput{}, itinerary.ErrInvalidTimeRange
	}

	var out itinerary.CreateOutput
	var eventID string
	if input.SyncCalendar {
		event, err := uc.syncCalendar(ctx, title, input, end)
		if err != nil {
			uc.l.Warnf(ctx, "uc.Create syncCalendar: %v", err)
			out.CalendarError = err.Error()
		} else {
			eventID = event.ID
			out.CalendarSynced = true
		}
	}

	item, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		TripID:          input.TripID,
		UserID:          input.Scope.UserID,
		Title:           title,
		Type:            itinerary.ParseItemType(input.Type),
		Location:        strings.TrimSpace(input.Location),
		StartTime:       input.StartTime,
		EndTime:         end,
		Notes:           strings.TrimSpace(input.Notes),
		CalendarEventID: eventID,
		CreatedAt:       uc.now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateItem: %v", err)
		return itinerary.CreateOutput{}, err
	}

	out.Item = item
	return out, nil
}

func (uc *implUseCase) syncCalendar(ctx context.Context, title string, input itinerary.CreateInput, end time.Time) (*gcalendar.Event, error) {
	if uc.calendar == nil {
		return nil, errCalendarNotConfigured
	}
	return uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.cfg.CalendarID,
		Summary:     title,
		Description: input.Notes,
		Location:    input.Location,
		StartTime:   input.StartTime,
		EndTime:     end,
		Timezone:    uc.dates.Location().String(),
	})
}
