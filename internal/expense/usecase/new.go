package usecase

import (
	"time"

	"travel-planner/internal/currency"
	"travel-planner/internal/expense"
	"travel-planner/internal/expense/repository"
	"travel-planner/pkg/log"
)

const maxDescriptionLen = 500

// implUseCase is the private implementation of expense.UseCase.
type implUseCase struct {
	repo     repository.Repository
	currency currency.Service
	l        log.Logger
	now      func() time.Time
}

var _ expense.UseCase = (*implUseCase)(nil)

// New creates a new expense UseCase implementation.
func New(repo repository.Repository, cur currency.Service, l log.Logger) expense.UseCase {
	return &implUseCase{
		repo:     repo,
		currency: cur,
		l:        l,
		now:      time.Now,
	}
}
