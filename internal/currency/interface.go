package currency

import (
	"context"
	"time"

	"travel-planner/pkg/exchangerate"
)

// Service owns the USD based rate table.
// Implementations are safe for concurrent use.
type Service interface {
	// Rates returns a copy of the current table. It is never empty.
	Rates() RateTable
	// Status reports whether the table comes from the live provider or the static fallback.
	Status() Status
	// RefreshIfStale fetches live rates when the table is older than the cache window.
	// Failures are soft: they are reported in the result and leave the table untouched.
	RefreshIfStale(ctx context.Context, now time.Time) RefreshResult
	// Convert converts amount between two codes using the current table.
	Convert(ctx context.Context, amount float64, from, to string) Conversion
	// Normalize converts amount in code into the base currency.
	Normalize(ctx context.Context, amount float64, code string) Normalized
	// Render converts a base currency amount into the target display currency.
	Render(ctx context.Context, baseAmount float64, target string) Conversion
}

// RateProvider is the live rate source.
type RateProvider interface {
	Latest(ctx context.Context) (exchangerate.Latest, error)
}
