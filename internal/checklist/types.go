package checklist

import (
	"strings"
	"time"

	"travel-planner/internal/model"
)

// Category groups packing items.
type Category string

const (
	CategoryClothing    Category = "Clothing"
	CategoryToiletries  Category = "Toiletries"
	CategoryDocuments   Category = "Documents"
	CategoryElectronics Category = "Electronics"
	CategoryOther       Category = "Other"
)

// Categories lists every category in display order.
func Categories() []Category {
	return []Category{
		CategoryClothing,
		CategoryToiletries,
		CategoryDocuments,
		CategoryElectronics,
		CategoryOther,
	}
}

// ParseCategory matches case-insensitively; anything unknown is Other.
func ParseCategory(s string) Category {
	for _, c := range Categories() {
		if strings.EqualFold(string(c), strings.TrimSpace(s)) {
			return c
		}
	}
	return CategoryOther
}

// PackingItem is one line of a trip's packing list.
type PackingItem struct {
	ID        string
	TripID    string
	UserID    string
	Name      string
	Category  Category
	Packed    bool
	CreatedAt time.Time
}

// Checkbox is a single markdown checkbox line.
type Checkbox struct {
	Indent   string
	Checked  bool
	Text     string
	Category Category // from the nearest preceding heading, Other when none
	RawLine  string
}

// Progress counts packed items.
type Progress struct {
	Total   int
	Packed  int
	Pending int
	Percent float64 // 0-100
}

// NewProgress derives pending and percent from the counts.
func NewProgress(total, packed int) Progress {
	p := Progress{Total: total, Packed: packed, Pending: total - packed}
	if total > 0 {
		p.Percent = float64(packed) / float64(total) * 100
	}
	return p
}

// --- UseCase Inputs ---

type AddInput struct {
	Scope    model.Scope
	TripID   string
	Name     string
	Category string
}

type ListInput struct {
	Scope    model.Scope
	TripID   string
	Category string // optional filter
}

type SetPackedInput struct {
	Scope  model.Scope
	TripID string
	ID     string
	Packed bool
}

type ImportInput struct {
	Scope    model.Scope
	TripID   string
	Markdown string
}

type ProgressInput struct {
	Scope    model.Scope
	TripID   string
	Category string // optional filter
}

type SuggestInput struct {
	Scope    model.Scope
	TripID   string
	Category string // empty suggests for every category
}

type ExportInput struct {
	Scope  model.Scope
	TripID string
}

// --- UseCase Outputs ---

type ListOutput struct {
	Items    []PackingItem
	Progress Progress
}

type ImportOutput struct {
	Imported []PackingItem
	// Skipped counts checkboxes whose name was already on the list.
	Skipped int
}

type ProgressOutput struct {
	Overall    Progress
	ByCategory map[Category]Progress
}

type SuggestOutput struct {
	Suggestions map[Category][]string
}

type ExportOutput struct {
	Markdown string
}
