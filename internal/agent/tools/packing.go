package tools

import (
	"context"
	"fmt"
	"strings"

	"travel-planner/internal/agent"
	"travel-planner/internal/checklist"
	"travel-planner/internal/router"
	"travel-planner/pkg/log"
)

const (
	PackingToolName     = "packing_checklist"
	maxSuggestionsShown = 5
)

// PackingTool reports packing progress and suggests what is still missing.
type PackingTool struct {
	uc checklist.UseCase
	l  log.Logger
}

func NewPackingTool(uc checklist.UseCase, l log.Logger) *PackingTool {
	return &PackingTool{uc: uc, l: l}
}

func (t *PackingTool) Name() string {
	return PackingToolName
}

func (t *PackingTool) Description() string {
	return "Packing progress and suggestions, e.g. \"what documents should I pack?\""
}

func (t *PackingTool) Execute(ctx context.Context, call agent.Call) (agent.Result, error) {
	if call.TripID == "" {
		return agent.Decline(), nil
	}
	category := call.Fields[router.FieldCategory]

	progress, err := t.uc.Progress(ctx, checklist.ProgressInput{Scope: call.Scope, TripID: call.TripID, Category: category})
	if err != nil {
		t.l.Errorf(ctx, "packing_checklist: progress: %v", err)
		return agent.Failed(agent.FailureGeneric, "Sorry, I couldn't load your packing list. Please try again."), nil
	}
	suggest, err := t.uc.Suggest(ctx, checklist.SuggestInput{Scope: call.Scope, TripID: call.TripID, Category: category})
	if err != nil {
		t.l.Errorf(ctx, "packing_checklist: suggest: %v", err)
		return agent.Failed(agent.FailureGeneric, "Sorry, I couldn't load your packing list. Please try again."), nil
	}

	var sb strings.Builder
	label := "Packing"
	if category != "" {
		label = string(checklist.ParseCategory(category))
	}
	p := progress.Overall
	if p.Total == 0 {
		fmt.Fprintf(&sb, "%s: nothing on your list yet.", label)
	} else {
		fmt.Fprintf(&sb, "%s: %d/%d packed (%.0f%%).", label, p.Packed, p.Total, p.Percent)
	}

	var missing []string
	for _, c := range checklist.Categories() {
		missing = append(missing, suggest.Suggestions[c]...)
	}
	if len(missing) > maxSuggestionsShown {
		missing = missing[:maxSuggestionsShown]
	}
	if len(missing) > 0 {
		fmt.Fprintf(&sb, "\nConsider adding: %s.", strings.Join(missing, ", "))
	} else if p.Total > 0 && p.Pending == 0 {
		sb.WriteString("\nAll set!")
	}

	res := agent.Answer(sb.String())
	res.Data = progress
	return res, nil
}

var _ agent.Tool = (*PackingTool)(nil)
