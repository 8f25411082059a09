package usecase

import (
	"time"

	"travel-planner/internal/checklist"
	"travel-planner/internal/checklist/repository"
	"travel-planner/pkg/log"
)

const (
	maxNameLen     = 200
	maxImportBytes = 64 << 10
)

type implUseCase struct {
	repo repository.Repository
	l    log.Logger
	now  func() time.Time
}

var _ checklist.UseCase = (*implUseCase)(nil)

// New creates the packing checklist UseCase.
func New(repo repository.Repository, l log.Logger) checklist.UseCase {
	return &implUseCase{repo: repo, l: l, now: time.Now}
}
