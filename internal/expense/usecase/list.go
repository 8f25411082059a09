package usecase

import (
	"context"
	"strings"

	"travel-planner/internal/currency"
	"travel-planner/internal/expense"
	repo "travel-planner/internal/expense/repository"
	"travel-planner/pkg/money"
)

// List renders every stored amount in the display currency.
func (uc *implUseCase) List(ctx context.Context, input expense.ListInput) (expense.ListOutput, error) {
	items, display, err := uc.load(ctx, input.Scope.UserID, input.TripID, input.DisplayCurrency)
	if err != nil {
		return expense.ListOutput{}, err
	}

	out := expense.ListOutput{
		Items:           make([]expense.DisplayExpense, len(items)),
		DisplayCurrency: display,
		Live:            uc.currency.Status().Live,
	}
	for i, e := range items {
		c := uc.currency.Render(ctx, e.Amount, display)
		out.Items[i] = expense.DisplayExpense{
			Expense:       e,
			DisplayAmount: money.Round(c.Amount, display),
		}
	}
	return out, nil
}

// Summary totals per category in the display currency. Every category is present.
func (uc *implUseCase) Summary(ctx context.Context, input expense.SummaryInput) (expense.SummaryOutput, error) {
	items, display, err := uc.load(ctx, input.Scope.UserID, input.TripID, input.DisplayCurrency)
	if err != nil {
		return expense.SummaryOutput{}, err
	}

	perCategory := make(map[expense.Category][]float64, len(expense.Categories()))
	base := make([]float64, len(items))
	for i, e := range items {
		perCategory[e.Category] = append(perCategory[e.Category], e.Amount)
		base[i] = e.Amount
	}

	out := expense.SummaryOutput{
		ByCategory:      make(map[expense.Category]float64, len(expense.Categories())),
		Count:           len(items),
		DisplayCurrency: display,
		Live:            uc.currency.Status().Live,
	}
	for _, cat := range expense.Categories() {
		c := uc.currency.Render(ctx, money.Sum(perCategory[cat]...), display)
		out.ByCategory[cat] = money.Round(c.Amount, display)
	}
	out.Total = money.Round(uc.currency.Render(ctx, money.Sum(base...), display).Amount, display)
	return out, nil
}

func (uc *implUseCase) load(ctx context.Context, userID, tripID, display string) ([]expense.Expense, string, error) {
	if tripID == "" {
		return nil, "", expense.ErrTripRequired
	}
	display = strings.ToUpper(strings.TrimSpace(display))
	if display == "" {
		display = currency.BaseCurrency
	}

	uc.currency.RefreshIfStale(ctx, uc.now())

	items, err := uc.repo.ListExpenses(ctx, repo.ListExpensesOptions{TripID: tripID, UserID: userID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.load ListExpenses: %v", err)
		return nil, "", err
	}
	return items, display, nil
}
