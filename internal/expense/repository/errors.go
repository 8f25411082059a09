package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert expense")
	ErrFailedToList   = errors.New("failed to list expenses")
)
