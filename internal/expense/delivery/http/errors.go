package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"travel-planner/internal/expense"
	pkgErrors "travel-planner/pkg/errors"
	"travel-planner/pkg/response"
)

var (
	errWrongBody       = pkgErrors.NewHTTPError(120001, "Wrong body")
	errTripRequired    = pkgErrors.NewHTTPError(120002, "Trip id is required")
	errInvalidAmount   = pkgErrors.NewHTTPError(120003, "Amount must be greater than zero")
	errDescriptionLong = pkgErrors.NewHTTPError(120004, "Description is too long")
	errUnauthorized    = pkgErrors.NewHTTPErrorWithStatus(120005, "Unauthorized", http.StatusUnauthorized)
)

// mapError translates use-case errors into HTTP errors; anything unmapped is a 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, expense.ErrTripRequired):
		return errTripRequired
	case errors.Is(err, expense.ErrInvalidAmount):
		return errInvalidAmount
	case errors.Is(err, expense.ErrDescriptionLong):
		return errDescriptionLong
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
