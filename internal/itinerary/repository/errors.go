package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert itinerary item")
	ErrFailedToList   = errors.New("failed to list itinerary items")
)
