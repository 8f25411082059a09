package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"travel-planner/internal/itinerary"
	pkgErrors "travel-planner/pkg/errors"
	"travel-planner/pkg/response"
)

var (
	errWrongBody        = pkgErrors.NewHTTPError(130001, "Wrong body")
	errTripRequired     = pkgErrors.NewHTTPError(130002, "Trip id is required")
	errTitleRequired    = pkgErrors.NewHTTPError(130003, "Title is required")
	errStartRequired    = pkgErrors.NewHTTPError(130004, "Start time is required")
	errInvalidTimeRange = pkgErrors.NewHTTPError(130005, "End time must be after start time")
	errUnknownPeriod    = pkgErrors.NewHTTPError(130006, "Unknown period")
	errUnauthorized     = pkgErrors.NewHTTPErrorWithStatus(130007, "Unauthorized", http.StatusUnauthorized)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, itinerary.ErrTripRequired):
		return errTripRequired
	case errors.Is(err, itinerary.ErrTitleRequired):
		return errTitleRequired
	case errors.Is(err, itinerary.ErrStartRequired):
		return errStartRequired
	case errors.Is(err, itinerary.ErrInvalidTimeRange):
		return errInvalidTimeRange
	case errors.Is(err, itinerary.ErrUnknownPeriod):
		return errUnknownPeriod
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
