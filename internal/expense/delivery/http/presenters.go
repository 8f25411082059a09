package http

import (
	"strings"
	"time"

	"travel-planner/internal/expense"
	"travel-planner/internal/model"
)

// --- Request DTOs ---

type createReq struct {
	TripID      string  `json:"-"`
	Description string  `json:"description" binding:"max=500"`
	Amount      float64 `json:"amount"      binding:"required,gt=0"`
	Currency    string  `json:"currency"    binding:"omitempty,len=3,alpha"`
	Category    string  `json:"category"`
}

func (r createReq) toInput(sc model.Scope) expense.CreateInput {
	return expense.CreateInput{
		Scope:       sc,
		TripID:      r.TripID,
		Description: r.Description,
		Amount:      r.Amount,
		Currency:    strings.ToUpper(r.Currency),
		Category:    r.Category,
	}
}

type listReq struct {
	TripID   string `form:"-"`
	Currency string `form:"currency" binding:"omitempty,len=3,alpha"`
}

func (r listReq) toListInput(sc model.Scope) expense.ListInput {
	return expense.ListInput{Scope: sc, TripID: r.TripID, DisplayCurrency: r.Currency}
}

func (r listReq) toSummaryInput(sc model.Scope) expense.SummaryInput {
	return expense.SummaryInput{Scope: sc, TripID: r.TripID, DisplayCurrency: r.Currency}
}

// --- Response DTOs ---

type expenseResp struct {
	ID               string    `json:"id"`
	TripID           string    `json:"trip_id"`
	Description      string    `json:"description"`
	Amount           float64   `json:"amount"`
	Category         string    `json:"category"`
	OriginalCurrency string    `json:"original_currency"`
	OriginalAmount   float64   `json:"original_amount"`
	Rate             float64   `json:"rate"`
	CreatedAt        time.Time `json:"created_at"`
}

func newExpenseResp(e expense.Expense) expenseResp {
	return expenseResp{
		ID:               e.ID,
		TripID:           e.TripID,
		Description:      e.Description,
		Amount:           e.Amount,
		Category:         string(e.Category),
		OriginalCurrency: e.OriginalCurrency,
		OriginalAmount:   e.OriginalAmount,
		Rate:             e.Rate,
		CreatedAt:        e.CreatedAt,
	}
}

type createResp struct {
	Expense  expenseResp `json:"expense"`
	Fallback bool        `json:"fallback_rate"`
}

func (h *handler) newCreateResp(out expense.CreateOutput) createResp {
	return createResp{Expense: newExpenseResp(out.Expense), Fallback: out.Fallback}
}

type displayExpenseResp struct {
	expenseResp
	DisplayAmount float64 `json:"display_amount"`
}

type listResp struct {
	Items           []displayExpenseResp `json:"items"`
	DisplayCurrency string               `json:"display_currency"`
	LiveRates       bool                 `json:"live_rates"`
}

func (h *handler) newListResp(out expense.ListOutput) listResp {
	items := make([]displayExpenseResp, len(out.Items))
	for i, it := range out.Items {
		items[i] = displayExpenseResp{expenseResp: newExpenseResp(it.Expense), DisplayAmount: it.DisplayAmount}
	}
	return listResp{Items: items, DisplayCurrency: out.DisplayCurrency, LiveRates: out.Live}
}

type summaryResp struct {
	ByCategory      map[string]float64 `json:"by_category"`
	Total           float64            `json:"total"`
	Count           int                `json:"count"`
	DisplayCurrency string             `json:"display_currency"`
	LiveRates       bool               `json:"live_rates"`
}

func (h *handler) newSummaryResp(out expense.SummaryOutput) summaryResp {
	byCat := make(map[string]float64, len(out.ByCategory))
	for k, v := range out.ByCategory {
		byCat[string(k)] = v
	}
	return summaryResp{
		ByCategory:      byCat,
		Total:           out.Total,
		Count:           out.Count,
		DisplayCurrency: out.DisplayCurrency,
		LiveRates:       out.Live,
	}
}
