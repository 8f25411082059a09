package http

import (
	"travel-planner/internal/expense"
	"travel-planner/pkg/log"
)

type handler struct {
	l  log.Logger
	uc expense.UseCase
}

// New creates a new HTTP handler for the expense domain.
func New(l log.Logger, uc expense.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
