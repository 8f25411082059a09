package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"travel-planner/internal/agent"
	"travel-planner/internal/itinerary"
	"travel-planner/internal/router"
	"travel-planner/pkg/log"
)

const ShowItineraryToolName = "show_itinerary"

// ShowItineraryTool lists the trip's plans for the period mentioned.
type ShowItineraryTool struct {
	uc itinerary.UseCase
	l  log.Logger
}

func NewShowItineraryTool(uc itinerary.UseCase, l log.Logger) *ShowItineraryTool {
	return &ShowItineraryTool{uc: uc, l: l}
}

func (t *ShowItineraryTool) Name() string {
	return ShowItineraryToolName
}

func (t *ShowItineraryTool) Description() string {
	return "Show the trip itinerary, e.g. \"what's planned for tomorrow?\""
}

func (t *ShowItineraryTool) Execute(ctx context.Context, call agent.Call) (agent.Result, error) {
	if call.TripID == "" {
		return agent.Decline(), nil
	}

	when := call.Fields[router.FieldWhen]
	out, err := t.uc.List(ctx, itinerary.ListInput{
		Scope:  call.Scope,
		TripID: call.TripID,
		When:   when,
		Type:   call.Fields[router.FieldType],
	})
	if errors.Is(err, itinerary.ErrUnknownPeriod) {
		// Period words outside the window table still deserve the full list.
		when = ""
		out, err = t.uc.List(ctx, itinerary.ListInput{Scope: call.Scope, TripID: call.TripID})
	}
	if err != nil {
		t.l.Errorf(ctx, "show_itinerary: %v", err)
		return agent.Failed(agent.FailureGeneric, "Sorry, I couldn't load your itinerary. Please try again."), nil
	}

	period := "on this trip"
	if when != "" {
		period = "for " + when
	}
	if len(out.Items) == 0 {
		return agent.Answer(fmt.Sprintf("Nothing is planned %s yet.", period)), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Planned %s:", period)
	for _, it := range out.Items {
		fmt.Fprintf(&sb, "\n- %s %s", it.StartTime.Format("Mon 2 Jan 15:04"), it.Title)
		if it.Location != "" {
			fmt.Fprintf(&sb, " @ %s", it.Location)
		}
	}

	res := agent.Answer(sb.String())
	res.Data = out.Items
	return res, nil
}

var _ agent.Tool = (*ShowItineraryTool)(nil)
