package usecase

import (
	"context"
	"strings"

	"travel-planner/internal/checklist"
	repo "travel-planner/internal/checklist/repository"
)

// Import adds every checkbox of a markdown list, keeping its checked state.
// Names already on the list, or repeated within the document, are skipped.
func (uc *implUseCase) Import(ctx context.Context, input checklist.ImportInput) (checklist.ImportOutput, error) {
	if len(input.Markdown) > maxImportBytes {
		return checklist.ImportOutput{}, checklist.ErrImportTooLong
	}
	boxes := checklist.ParseMarkdown(input.Markdown)
	if len(boxes) == 0 {
		return checklist.ImportOutput{}, checklist.ErrEmptyImport
	}

	existing, err := uc.load(ctx, input.Scope.UserID, input.TripID, "")
	if err != nil {
		return checklist.ImportOutput{}, err
	}
	seen := make(map[string]struct{}, len(existing)+len(boxes))
	for _, it := range existing {
		seen[strings.ToLower(it.Name)] = struct{}{}
	}

	now := uc.now()
	var out checklist.ImportOutput
	opts := make([]repo.CreateItemOptions, 0, len(boxes))
	for _, b := range boxes {
		name, err := validateName(b.Text)
		if err != nil {
			out.Skipped++
			continue
		}
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			out.Skipped++
			continue
		}
		seen[key] = struct{}{}
		opts = append(opts, repo.CreateItemOptions{
			TripID:    input.TripID,
			UserID:    input.Scope.UserID,
			Name:      name,
			Category:  b.Category,
			Packed:    b.Checked,
			CreatedAt: now,
		})
	}

	if len(opts) == 0 {
		return out, nil
	}
	out.Imported, err = uc.repo.CreateItems(ctx, opts)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Import CreateItems: %v", err)
		return checklist.ImportOutput{}, err
	}
	return out, nil
}

func (uc *implUseCase) Export(ctx context.Context, input checklist.ExportInput) (checklist.ExportOutput, error) {
	items, err := uc.load(ctx, input.Scope.UserID, input.TripID, "")
	if err != nil {
		return checklist.ExportOutput{}, err
	}
	return checklist.ExportOutput{Markdown: checklist.RenderMarkdown(items)}, nil
}
