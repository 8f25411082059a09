package checklist

import "errors"

var (
	ErrTripRequired  = errors.New("trip id is required")
	ErrNameRequired  = errors.New("item name is required")
	ErrNameTooLong   = errors.New("item name is too long")
	ErrItemNotFound  = errors.New("packing item not found")
	ErrEmptyImport   = errors.New("no checkboxes found in markdown")
	ErrImportTooLong = errors.New("markdown is too long")
)
