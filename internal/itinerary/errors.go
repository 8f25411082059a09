package itinerary

import "errors"

var (
	ErrTripRequired     = errors.New("trip id is required")
	ErrTitleRequired    = errors.New("title is required")
	ErrStartRequired    = errors.New("start time is required")
	ErrInvalidTimeRange = errors.New("end time must be after start time")
	ErrUnknownPeriod    = errors.New("unknown period")
)
