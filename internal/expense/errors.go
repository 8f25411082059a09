package expense

import "errors"

var (
	ErrTripRequired    = errors.New("trip id is required")
	ErrInvalidAmount   = errors.New("amount must be greater than zero")
	ErrDescriptionLong = errors.New("description is too long")
)
