package repository

import (
	"time"

	"travel-planner/internal/expense"
)

// CreateExpenseOptions holds a fully normalised expense ready to insert.
type CreateExpenseOptions struct {
	TripID           string
	UserID           string
	Description      string
	Amount           float64
	Category         expense.Category
	OriginalCurrency string
	OriginalAmount   float64
	Rate             float64
	CreatedAt        time.Time
}

// ListExpensesOptions filters by trip and owner. Results are oldest first.
type ListExpensesOptions struct {
	TripID string
	UserID string
}
