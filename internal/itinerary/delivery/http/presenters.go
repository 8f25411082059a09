package http

import (
	"time"

	"travel-planner/internal/itinerary"
	"travel-planner/internal/model"
)

// --- Request DTOs ---

type createReq struct {
	TripID       string    `json:"-"`
	Title        string    `json:"title"      binding:"required,max=200"`
	Type         string    `json:"type"`
	Location     string    `json:"location"`
	StartTime    time.Time `json:"start_time" binding:"required"`
	EndTime      time.Time `json:"end_time"`
	Notes        string    `json:"notes"      binding:"max=2000"`
	SyncCalendar bool      `json:"sync_calendar"`
}

func (r createReq) toInput(sc model.Scope) itinerary.CreateInput {
	return itinerary.CreateInput{
		Scope:        sc,
		TripID:       r.TripID,
		Title:        r.Title,
		Type:         r.Type,
		Location:     r.Location,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		Notes:        r.Notes,
		SyncCalendar: r.SyncCalendar,
	}
}

type listReq struct {
	TripID string `form:"-"`
	When   string `form:"when"`
	Type   string `form:"type"`
}

func (r listReq) toInput(sc model.Scope) itinerary.ListInput {
	return itinerary.ListInput{Scope: sc, TripID: r.TripID, When: r.When, Type: r.Type}
}

// --- Response DTOs ---

type itemResp struct {
	ID              string    `json:"id"`
	TripID          string    `json:"trip_id"`
	Title           string    `json:"title"`
	Type            string    `json:"type"`
	Location        string    `json:"location,omitempty"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	Notes           string    `json:"notes,omitempty"`
	CalendarEventID string    `json:"calendar_event_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func newItemResp(it itinerary.Item) itemResp {
	return itemResp{
		ID:              it.ID,
		TripID:          it.TripID,
		Title:           it.Title,
		Type:            string(it.Type),
		Location:        it.Location,
		StartTime:       it.StartTime,
		EndTime:         it.EndTime,
		Notes:           it.Notes,
		CalendarEventID: it.CalendarEventID,
		CreatedAt:       it.CreatedAt,
	}
}

type createResp struct {
	Item           itemResp `json:"item"`
	CalendarSynced bool     `json:"calendar_synced"`
	CalendarError  string   `json:"calendar_error,omitempty"`
}

func (h *handler) newCreateResp(out itinerary.CreateOutput) createResp {
	return createResp{
		Item:           newItemResp(out.Item),
		CalendarSynced: out.CalendarSynced,
		CalendarError:  out.CalendarError,
	}
}

type windowResp struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type listResp struct {
	Items  []itemResp  `json:"items"`
	Window *windowResp `json:"window,omitempty"`
}

func (h *handler) newListResp(out itinerary.ListOutput) listResp {
	items := make([]itemResp, len(out.Items))
	for i, it := range out.Items {
		items[i] = newItemResp(it)
	}
	resp := listResp{Items: items}
	if out.Window != nil {
		resp.Window = &windowResp{Start: out.Window.Start, End: out.Window.End}
	}
	return resp
}
