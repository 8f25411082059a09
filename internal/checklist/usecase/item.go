package usecase

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"travel-planner/internal/checklist"
	repo "travel-planner/internal/checklist/repository"
)

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", checklist.ErrNameRequired
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return "", checklist.ErrNameTooLong
	}
	return name, nil
}

func (uc *implUseCase) Add(ctx context.Context, input checklist.AddInput) (checklist.PackingItem, error) {
	if strings.TrimSpace(input.TripID) == "" {
		return checklist.PackingItem{}, checklist.ErrTripRequired
	}
	name, err := validateName(input.Name)
	if err != nil {
		return checklist.PackingItem{}, err
	}

	items, err := uc.repo.CreateItems(ctx, []repo.CreateItemOptions{{
		TripID:    input.TripID,
		UserID:    input.Scope.UserID,
		Name:      name,
		Category:  checklist.ParseCategory(input.Category),
		CreatedAt: uc.now(),
	}})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Add CreateItems: %v", err)
		return checklist.PackingItem{}, err
	}
	return items[0], nil
}

func (uc *implUseCase) List(ctx context.Context, input checklist.ListInput) (checklist.ListOutput, error) {
	items, err := uc.load(ctx, input.Scope.UserID, input.TripID, input.Category)
	if err != nil {
		return checklist.ListOutput{}, err
	}
	return checklist.ListOutput{Items: items, Progress: progressOf(items)}, nil
}

func (uc *implUseCase) SetPacked(ctx context.Context, input checklist.SetPackedInput) (checklist.PackingItem, error) {
	if strings.TrimSpace(input.TripID) == "" {
		return checklist.PackingItem{}, checklist.ErrTripRequired
	}

	item, err := uc.repo.UpdatePacked(ctx, repo.UpdatePackedOptions{
		ID:     input.ID,
		TripID: input.TripID,
		UserID: input.Scope.UserID,
		Packed: input.Packed,
	})
	if errors.Is(err, repo.ErrNotFound) {
		return checklist.PackingItem{}, checklist.ErrItemNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.SetPacked UpdatePacked: %v", err)
		return checklist.PackingItem{}, err
	}
	return item, nil
}

// load fetches the trip's items, optionally narrowed to one category.
func (uc *implUseCase) load(ctx context.Context, userID, tripID, category string) ([]checklist.PackingItem, error) {
	if strings.TrimSpace(tripID) == "" {
		return nil, checklist.ErrTripRequired
	}

	opt := repo.ListItemsOptions{TripID: tripID, UserID: userID}
	if strings.TrimSpace(category) != "" {
		opt.Category = checklist.ParseCategory(category)
	}

	items, err := uc.repo.ListItems(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.load ListItems: %v", err)
		return nil, err
	}
	return items, nil
}

func progressOf(items []checklist.PackingItem) checklist.Progress {
	packed := 0
	for _, it := range items {
		if it.Packed {
			packed++
		}
	}
	return checklist.NewProgress(len(items), packed)
}
