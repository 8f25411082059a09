package tools

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"travel-planner/internal/agent"
	"travel-planner/internal/currency"
	"travel-planner/internal/expense"
	"travel-planner/internal/router"
	"travel-planner/pkg/log"
	"travel-planner/pkg/money"
)

const LogExpenseToolName = "log_expense"

// LogExpenseTool records "spent €45 on dinner" style utterances against the current trip.
type LogExpenseTool struct {
	uc expense.UseCase
	l  log.Logger
}

func NewLogExpenseTool(uc expense.UseCase, l log.Logger) *LogExpenseTool {
	return &LogExpenseTool{uc: uc, l: l}
}

func (t *LogExpenseTool) Name() string {
	return LogExpenseToolName
}

func (t *LogExpenseTool) Description() string {
	return "Log an expense on the current trip, e.g. \"spent 45 EUR on dinner\""
}

// Execute declines without a trip or a usable amount so the chat model can ask.
func (t *LogExpenseTool) Execute(ctx context.Context, call agent.Call) (agent.Result, error) {
	if call.TripID == "" {
		return agent.Decline(), nil
	}
	amount, err := strconv.ParseFloat(call.Fields[router.FieldAmount], 64)
	if err != nil || amount <= 0 {
		return agent.Decline(), nil
	}
	code := call.Fields[router.FieldCurrency]
	if code == "" {
		code = currency.BaseCurrency
	}

	out, err := t.uc.Create(ctx, expense.CreateInput{
		Scope:       call.Scope,
		TripID:      call.TripID,
		Description: strings.TrimSpace(call.Message),
		Amount:      amount,
		Currency:    code,
		Category:    call.Fields[router.FieldCategory],
	})
	if err != nil {
		t.l.Errorf(ctx, "log_expense: %v", err)
		return agent.Failed(agent.FailureGeneric, "Sorry, I couldn't save that expense. Please try again."), nil
	}

	e := out.Expense
	text := fmt.Sprintf("Logged %s under %s", money.Format(e.OriginalAmount, e.OriginalCurrency), e.Category)
	if e.OriginalCurrency != currency.BaseCurrency {
		text += fmt.Sprintf(" (%s)", money.FormatSymbol(e.Amount, currency.BaseCurrency))
	}
	text += "."
	if out.Fallback {
		text += fmt.Sprintf(" I don't know %s, so it was recorded 1:1 with USD.", e.OriginalCurrency)
	}

	res := agent.Answer(text)
	res.Data = e
	return res, nil
}

var _ agent.Tool = (*LogExpenseTool)(nil)
