package expense

import (
	"strings"
	"time"

	"travel-planner/internal/model"
)

// Category groups expenses for the summary.
type Category string

const (
	CategoryFood           Category = "Food"
	CategoryTransportation Category = "Transportation"
	CategoryAccommodation  Category = "Accommodation"
	CategoryEntertainment  Category = "Entertainment"
	CategoryShopping       Category = "Shopping"
	CategoryOther          Category = "Other"
)

// Categories lists every category in display order.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryTransportation,
		CategoryAccommodation,
		CategoryEntertainment,
		CategoryShopping,
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

// Expense is stored in the base currency with the original amount and rate alongside.
type Expense struct {
	ID               string
	TripID           string
	UserID           string
	Description      string
	Amount           float64
	Category         Category
	OriginalCurrency string
	OriginalAmount   float64
	Rate             float64
	CreatedAt        time.Time
}

// --- UseCase Inputs ---

type CreateInput struct {
	Scope       model.Scope
	TripID      string
	Description string
	Amount      float64
	Currency    string
	Category    string
}

type ListInput struct {
	Scope           model.Scope
	TripID          string
	DisplayCurrency string
}

type SummaryInput struct {
	Scope           model.Scope
	TripID          string
	DisplayCurrency string
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Expense Expense
	// Fallback is true when the rate snapshot came from the static table or a 1.0 default.
	Fallback bool
}

// DisplayExpense pairs a stored expense with its amount in the display currency.
type DisplayExpense struct {
	Expense       Expense
	DisplayAmount float64
}

type ListOutput struct {
	Items           []DisplayExpense
	DisplayCurrency string
	Live            bool
}

type SummaryOutput struct {
	ByCategory      map[Category]float64
	Total           float64
	Count           int
	DisplayCurrency string
	Live            bool
}
