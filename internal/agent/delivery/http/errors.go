package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"travel-planner/internal/agent"
	pkgErrors "travel-planner/pkg/errors"
	"travel-planner/pkg/response"
)

var (
	errWrongBody        = pkgErrors.NewHTTPError(100001, "Wrong body")
	errEmptyMessage     = pkgErrors.NewHTTPError(100002, "Message is empty")
	errSessionRequired  = pkgErrors.NewHTTPError(100003, "Session id is required")
	errSessionForbidden = pkgErrors.NewHTTPErrorWithStatus(100004, "Session belongs to another user", http.StatusForbidden)
	errSessionClosed    = pkgErrors.NewHTTPErrorWithStatus(100005, "Session was closed", http.StatusConflict)
	errUnauthorized     = pkgErrors.NewHTTPErrorWithStatus(100006, "Unauthorized", http.StatusUnauthorized)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, agent.ErrEmptyMessage):
		return errEmptyMessage
	case errors.Is(err, agent.ErrSessionForbidden):
		return errSessionForbidden
	case errors.Is(err, agent.ErrSessionClosed):
		return errSessionClosed
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
