package usecase

import (
	"context"
	"strings"

	"travel-planner/internal/checklist"
)

func (uc *implUseCase) Progress(ctx context.Context, input checklist.ProgressInput) (checklist.ProgressOutput, error) {
	items, err := uc.load(ctx, input.Scope.UserID, input.TripID, input.Category)
	if err != nil {
		return checklist.ProgressOutput{}, err
	}

	grouped := make(map[checklist.Category][]checklist.PackingItem)
	for _, it := range items {
		grouped[it.Category] = append(grouped[it.Category], it)
	}
	byCat := make(map[checklist.Category]checklist.Progress, len(grouped))
	for c, group := range grouped {
		byCat[c] = progressOf(group)
	}

	return checklist.ProgressOutput{Overall: progressOf(items), ByCategory: byCat}, nil
}

// Suggest returns template items not yet on the trip's list.
func (uc *implUseCase) Suggest(ctx context.Context, input checklist.SuggestInput) (checklist.SuggestOutput, error) {
	items, err := uc.load(ctx, input.Scope.UserID, input.TripID, "")
	if err != nil {
		return checklist.SuggestOutput{}, err
	}
	have := make(map[string]struct{}, len(items))
	for _, it := range items {
		have[strings.ToLower(it.Name)] = struct{}{}
	}

	cats := checklist.Categories()
	if strings.TrimSpace(input.Category) != "" {
		cats = []checklist.Category{checklist.ParseCategory(input.Category)}
	}

	out := checklist.SuggestOutput{Suggestions: make(map[checklist.Category][]string, len(cats))}
	for _, c := range cats {
		missing := []string{}
		for _, name := range checklist.Templates[c] {
			if _, ok := have[strings.ToLower(name)]; !ok {
				missing = append(missing, name)
			}
		}
		out.Suggestions[c] = missing
	}
	return out, nil
}
