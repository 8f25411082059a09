package tools

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"travel-planner/internal/agent"
	"travel-planner/internal/currency"
	"travel-planner/internal/router"
	"travel-planner/pkg/log"
	"travel-planner/pkg/money"
)

const (
	CurrencyToolName = "currency_convert"
	fieldFrom        = "from"
	fieldTo          = "to"
)

// CurrencyTool converts "<amount> <CODE> to <CODE>" requests.
type CurrencyTool struct {
	svc currency.Service
	l   log.Logger
	now func() time.Time
}

func NewCurrencyTool(svc currency.Service, l log.Logger) *CurrencyTool {
	return &CurrencyTool{svc: svc, l: l, now: time.Now}
}

func (t *CurrencyTool) Name() string {
	return CurrencyToolName
}

func (t *CurrencyTool) Description() string {
	return "Convert between currencies, e.g. \"100 USD to EUR\""
}

// Detect matches only when both codes are in the rate table, so "40 usd to pay"
// is left to the expense tool.
func (t *CurrencyTool) Detect(message string) (map[string]string, bool) {
	q, ok := router.ExtractConversion(message)
	if !ok {
		return nil, false
	}
	rates := t.svc.Rates()
	if _, known := rates[q.From]; !known {
		return nil, false
	}
	if _, known := rates[q.To]; !known {
		return nil, false
	}
	return map[string]string{
		router.FieldAmount: strconv.FormatFloat(q.Amount, 'f', -1, 64),
		fieldFrom:          q.From,
		fieldTo:            q.To,
	}, true
}

func (t *CurrencyTool) Execute(ctx context.Context, call agent.Call) (agent.Result, error) {
	amount, err := strconv.ParseFloat(call.Fields[router.FieldAmount], 64)
	if err != nil || call.Fields[fieldFrom] == "" || call.Fields[fieldTo] == "" {
		return agent.Decline(), nil
	}

	refresh := t.svc.RefreshIfStale(ctx, t.now())
	if refresh.Attempted && refresh.Err != nil {
		t.l.Warnf(ctx, "currency_convert: refresh: %v", refresh.Err)
	}

	conv := t.svc.Convert(ctx, amount, call.Fields[fieldFrom], call.Fields[fieldTo])

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s = %s", money.Format(conv.OriginalAmount, conv.From), money.Format(conv.Amount, conv.To))
	if len(conv.UnknownCodes) > 0 {
		fmt.Fprintf(&sb, "\nI don't have a rate for %s, so it was treated as 1:1 with USD.", strings.Join(conv.UnknownCodes, ", "))
	}
	if !conv.Live {
		sb.WriteString("\nLive rates are unavailable; this uses offline rates.")
	}

	res := agent.Answer(sb.String())
	res.Data = conv
	return res, nil
}

var (
	_ agent.Tool     = (*CurrencyTool)(nil)
	_ agent.Detector = (*CurrencyTool)(nil)
)
