package gcalendar

import (
	"errors"
	"time"
)

const DefaultCalendarID = "primary"

var (
	ErrCredentialsRequired = errors.New("gcalendar: credentials are required")
	ErrInvalidTimeRange    = errors.New("gcalendar: end time must be after start time")
)

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	Location    string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // IANA name, e.g. "Europe/Lisbon"
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID        string
	Summary   string
	HtmlLink  string
	Location  string
	StartTime time.Time
	EndTime   time.Time
}
