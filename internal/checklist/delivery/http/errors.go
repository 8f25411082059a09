package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"travel-planner/internal/checklist"
	pkgErrors "travel-planner/pkg/errors"
	"travel-planner/pkg/response"
)

var (
	errWrongBody     = pkgErrors.NewHTTPError(140001, "Wrong body")
	errTripRequired  = pkgErrors.NewHTTPError(140002, "Trip id is required")
	errNameRequired  = pkgErrors.NewHTTPError(140003, "Item name is required")
	errNameTooLong   = pkgErrors.NewHTTPError(140004, "Item name is too long")
	errEmptyImport   = pkgErrors.NewHTTPError(140005, "No checkboxes found in markdown")
	errImportTooLong = pkgErrors.NewHTTPError(140006, "Markdown is too long")
	errItemNotFound  = pkgErrors.NewHTTPErrorWithStatus(140007, "Packing item not found", http.StatusNotFound)
	errUnauthorized  = pkgErrors.NewHTTPErrorWithStatus(140008, "Unauthorized", http.StatusUnauthorized)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, checklist.ErrTripRequired):
		return errTripRequired
	case errors.Is(err, checklist.ErrNameRequired):
		return errNameRequired
	case errors.Is(err, checklist.ErrNameTooLong):
		return errNameTooLong
	case errors.Is(err, checklist.ErrEmptyImport):
		return errEmptyImport
	case errors.Is(err, checklist.ErrImportTooLong):
		return errImportTooLong
	case errors.Is(err, checklist.ErrItemNotFound):
		return errItemNotFound
	}
	return nil
}

func (h *handler) replyError(c *gin.Context, err error) {
	if mapped := h.mapError(err); mapped != nil {
		response.Error(c, mapped)
		return
	}
	response.InternalError(c, err)
}
