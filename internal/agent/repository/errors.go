package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert chat turns")
	ErrFailedToList   = errors.New("failed to list chat turns")
	ErrFailedToDelete = errors.New("failed to delete chat turns")
)
