package repository

import (
	"context"

	"travel-planner/internal/expense"
)

// Repository is the data store for expenses.
type Repository interface {
	CreateExpense(ctx context.Context, opt CreateExpenseOptions) (expense.Expense, error)
	ListExpenses(ctx context.Context, opt ListExpensesOptions) ([]expense.Expense, error)
}
