package usecase

import (
	"context"
	"strings"

	"travel-planner/internal/currency"
	"travel-planner/internal/expense"
	repo "travel-planner/internal/expense/repository"
)

// Create normalises the amount into the base currency and stores the rate it used.
// The base amount is kept unrounded; rounding belongs to presentation.
func (uc *implUseCase) Create(ctx context.Context, input expense.CreateInput) (expense.CreateOutput, error) {
	if strings.TrimSpace(input.TripID) == "" {
		return expense.CreateOutput{}, expense.ErrTripRequired
	}
	if input.Amount <= 0 {
		return expense.CreateOutput{}, expense.ErrInvalidAmount
	}
	description := strings.TrimSpace(input.Description)
	if len(description) > maxDescriptionLen {
		return expense.CreateOutput{}, expense.ErrDescriptionLong
	}

	code := input.Currency
	if code == "" {
		code = currency.BaseCurrency
	}

	now := uc.now()
	if res := uc.currency.RefreshIfStale(ctx, now); res.Err != nil {
		uc.l.Warnf(ctx, "uc.Create RefreshIfStale: %v", res.Err)
	}
	norm := uc.currency.Normalize(ctx, input.Amount, code)

	e, err := uc.repo.CreateExpense(ctx, repo.CreateExpenseOptions{
		TripID:           input.TripID,
		UserID:           input.Scope.UserID,
		Description:      description,
		Amount:           norm.BaseAmount,
		Category:         expense.ParseCategory(input.Category),
		OriginalCurrency: norm.OriginalCurrency,
		OriginalAmount:   input.Amount,
		Rate:             norm.Rate,
		CreatedAt:        now,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateExpense: %v", err)
		return expense.CreateOutput{}, err
	}

	return expense.CreateOutput{Expense: e, Fallback: norm.Fallback}, nil
}
