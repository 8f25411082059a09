package http

import (
	"time"

	"travel-planner/internal/checklist"
)

// --- Request DTOs ---

type addReq struct {
	Name     string `json:"name"     binding:"required"`
	Category string `json:"category"`
}

type setPackedReq struct {
	Packed *bool `json:"packed" binding:"required"`
}

type importReq struct {
	Markdown string `json:"markdown" binding:"required"`
}

type categoryQuery struct {
	Category string `form:"category"`
}

// --- Response DTOs ---

type itemResp struct {
	ID        string    `json:"id"`
	TripID    string    `json:"trip_id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Packed    bool      `json:"packed"`
	CreatedAt time.Time `json:"created_at"`
}

func newItemResp(it checklist.PackingItem) itemResp {
	return itemResp{
		ID:        it.ID,
		TripID:    it.TripID,
		Name:      it.Name,
		Category:  string(it.Category),
		Packed:    it.Packed,
		CreatedAt: it.CreatedAt,
	}
}

func newItemResps(items []checklist.PackingItem) []itemResp {
	out := make([]itemResp, len(items))
	for i, it := range items {
		out[i] = newItemResp(it)
	}
	return out
}

type progressResp struct {
	Total   int     `json:"total"`
	Packed  int     `json:"packed"`
	Pending int     `json:"pending"`
	Percent float64 `json:"percent"`
}

func newProgressResp(p checklist.Progress) progressResp {
	return progressResp{Total: p.Total, Packed: p.Packed, Pending: p.Pending, Percent: p.Percent}
}

type listResp struct {
	Items    []itemResp   `json:"items"`
	Progress progressResp `json:"progress"`
}

func (h *handler) newListResp(out checklist.ListOutput) listResp {
	return listResp{Items: newItemResps(out.Items), Progress: newProgressResp(out.Progress)}
}

type importResp struct {
	Imported []itemResp `json:"imported"`
	Skipped  int        `json:"skipped"`
}

func (h *handler) newImportResp(out checklist.ImportOutput) importResp {
	return importResp{Imported: newItemResps(out.Imported), Skipped: out.Skipped}
}

type progressSummaryResp struct {
	Overall    progressResp            `json:"overall"`
	ByCategory map[string]progressResp `json:"by_category"`
}

func (h *handler) newProgressSummaryResp(out checklist.ProgressOutput) progressSummaryResp {
	byCat := make(map[string]progressResp, len(out.ByCategory))
	for c, p := range out.ByCategory {
		byCat[string(c)] = newProgressResp(p)
	}
	return progressSummaryResp{Overall: newProgressResp(out.Overall), ByCategory: byCat}
}

type suggestResp struct {
	Suggestions map[string][]string `json:"suggestions"`
}

func (h *handler) newSuggestResp(out checklist.SuggestOutput) suggestResp {
	s := make(map[string][]string, len(out.Suggestions))
	for c, names := range out.Suggestions {
		s[string(c)] = names
	}
	return suggestResp{Suggestions: s}
}
