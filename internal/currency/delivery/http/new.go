package http

import (
	"time"

	"travel-planner/internal/currency"
	"travel-planner/pkg/log"
)

type handler struct {
	l   log.Logger
	svc currency.Service
	now func() time.Time
}

// New creates a new HTTP handler for exchange rates.
func New(l log.Logger, svc currency.Service) *handler {
	return &handler{l: l, svc: svc, now: time.Now}
}
