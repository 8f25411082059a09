package usecase

import (
	"context"
	"fmt"
	"strings"

	"travel-planner/internal/itinerary"
	repo "travel-planner/internal/itinerary/repository"
)

// List returns the trip's items, narrowed to a period and type when given.
func (uc *implUseCase) List(ctx context.Context, input itinerary.ListInput) (itinerary.ListOutput, error) {
	if strings.TrimSpace(input.TripID) == "" {
		return itinerary.ListOutput{}, itinerary.ErrTripRequired
	}

	opt := repo.ListItemsOptions{TripID: input.TripID, UserID: input.Scope.UserID}
	if input.Type != "" {
		opt.Type = itinerary.ParseItemType(input.Type)
	}

	var out itinerary.ListOutput
	if when := strings.TrimSpace(input.When); when != "" {
		w, err := uc.dates.Window(when, uc.now())
		if err != nil {
			return itinerary.ListOutput{}, fmt.Errorf("%w: %q", itinerary.ErrUnknownPeriod, when)
		}
		opt.From, opt.To = w.Start, w.End
		out.Window = &w
	}

	items, err := uc.repo.ListItems(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListItems: %v", err)
		return itinerary.ListOutput{}, err
	}
	out.Items = items
	return out, nil
}
