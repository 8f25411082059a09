package repository

import "errors"

var (
	ErrNotFound       = errors.New("packing item not found")
	ErrFailedToInsert = errors.New("failed to insert packing items")
	ErrFailedToList   = errors.New("failed to list packing items")
	ErrFailedToUpdate = errors.New("failed to update packing item")
)
