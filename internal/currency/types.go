package currency

import (
	"maps"
	"time"
)

// RateTable maps an ISO 4217 code to units of that currency per one BaseCurrency.
type RateTable map[string]float64

// Clone returns an independent copy of the table.
func (t RateTable) Clone() RateTable {
	return maps.Clone(t)
}

// Status describes the current table.
type Status struct {
	Live       bool      `json:"live"`
	FetchedAt  time.Time `json:"fetched_at"`
	Currencies int       `json:"currencies"`
}

// RefreshResult is the outcome of RefreshIfStale.
type RefreshResult struct {
	// Attempted is true when a network call was made (or joined) for this call.
	Attempted bool
	// Refreshed is true when a new live table was installed.
	Refreshed bool
	// Live reports the table source after the call.
	Live bool
	// Err explains a failed attempt. It is informational only.
	Err error
}

// Conversion is the result of Convert or Render.
type Conversion struct {
	Amount         float64  `json:"amount"`
	OriginalAmount float64  `json:"original_amount"`
	From           string   `json:"from"`
	To             string   `json:"to"`
	FromRate       float64  `json:"from_rate"`
	ToRate         float64  `json:"to_rate"`
	Live           bool     `json:"live"`
	Fallback       bool     `json:"fallback"`
	UnknownCodes   []string `json:"unknown_codes,omitempty"`
}

// Normalized is a base currency amount with the rate snapshot it was computed from.
type Normalized struct {
	BaseAmount       float64
	OriginalAmount   float64
	OriginalCurrency string
	Rate             float64
	Fallback         bool
}

type snapshot struct {
	rates     RateTable
	fetchedAt time.Time
	live      bool
}
