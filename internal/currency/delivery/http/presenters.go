package http

import (
	"strings"
	"time"

	"travel-planner/internal/currency"
	"travel-planner/pkg/money"
)

// --- Request DTOs ---

type convertReq struct {
	Amount *float64 `json:"amount" binding:"required"`
	From   string   `json:"from"   binding:"required,len=3,alpha"`
	To     string   `json:"to"     binding:"required,len=3,alpha"`
}

type ratesReq struct {
	Codes string `form:"codes"`
}

// codes parses a comma separated filter such as "eur,jpy".
func (r ratesReq) codes() []string {
	var out []string
	for _, c := range strings.Split(r.Codes, ",") {
		if c = strings.ToUpper(strings.TrimSpace(c)); c != "" {
			out = append(out, c)
		}
	}
	return out
}

// --- Response DTOs ---

type ratesResp struct {
	Base      string             `json:"base"`
	Live      bool               `json:"live"`
	FetchedAt *time.Time         `json:"fetched_at,omitempty"`
	Rates     map[string]float64 `json:"rates"`
	Missing   []string           `json:"missing,omitempty"`
}

func newRatesResp(status currency.Status, table currency.RateTable, codes []string) ratesResp {
	out := ratesResp{Base: currency.BaseCurrency, Live: status.Live, Rates: table}
	if status.Live {
		at := status.FetchedAt.UTC()
		out.FetchedAt = &at
	}
	if len(codes) == 0 {
		return out
	}

	out.Rates = make(map[string]float64, len(codes))
	for _, c := range codes {
		if rate, ok := table[c]; ok {
			out.Rates[c] = rate
		} else {
			out.Missing = append(out.Missing, c)
		}
	}
	return out
}

type convertResp struct {
	Amount         float64  `json:"amount"`
	Formatted      string   `json:"formatted"`
	OriginalAmount float64  `json:"original_amount"`
	From           string   `json:"from"`
	To             string   `json:"to"`
	Rate           float64  `json:"rate"`
	Live           bool     `json:"live"`
	Fallback       bool     `json:"fallback"`
	UnknownCodes   []string `json:"unknown_codes,omitempty"`
}

func newConvertResp(c currency.Conversion) convertResp {
	return convertResp{
		Amount:         money.Round(c.Amount, c.To),
		Formatted:      money.Format(c.Amount, c.To),
		OriginalAmount: c.OriginalAmount,
		From:           c.From,
		To:             c.To,
		Rate:           c.ToRate / c.FromRate,
		Live:           c.Live,
		Fallback:       c.Fallback,
		UnknownCodes:   c.UnknownCodes,
	}
}
