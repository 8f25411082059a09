package http

import (
	"travel-planner/internal/checklist"
	"travel-planner/pkg/log"
)

type handler struct {
	l  log.Logger
	uc checklist.UseCase
}

// New creates a new HTTP handler for the packing checklist.
func New(l log.Logger, uc checklist.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
