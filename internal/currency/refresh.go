package currency

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"travel-planner/pkg/exchangerate"
)

type refreshOutcome struct {
	attempted bool
	refreshed bool
	err       error
}

func (s *implService) RefreshIfStale(ctx context.Context, now time.Time) RefreshResult {
	current := s.table.Load()
	if !s.isStale(current, now) {
		return RefreshResult{Live: current.live}
	}
	if s.provider == nil {
		return RefreshResult{Live: current.live, Err: ErrProviderNotConfigured}
	}

	// The flight is shared by every waiting caller, so it must not die with the first one.
	v, _, _ := s.group.Do(refreshKey, func() (any, error) {
		flightCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
		defer cancel()
		return s.refresh(flightCtx, now), nil
	})
	out := v.(refreshOutcome)

	return RefreshResult{
		Attempted: out.attempted,
		Refreshed: out.refreshed,
		Live:      s.table.Load().live,
		Err:       out.err,
	}
}

func (s *implService) refresh(ctx context.Context, now time.Time) refreshOutcome {
	prev := s.table.Load()
	if !s.isStale(prev, now) {
		return refreshOutcome{}
	}

	latest, err := s.provider.Latest(ctx)
	if err != nil {
		s.l.Warnf(ctx, "%s: keeping %s rates, %s: %v", LogPrefixRefresh, source(prev), failureReason(err), err)
		return refreshOutcome{attempted: true, err: err}
	}

	next, err := mergeLive(prev.rates, latest)
	if err != nil {
		s.l.Warnf(ctx, "%s: keeping %s rates, rejected response: %v", LogPrefixRefresh, source(prev), err)
		return refreshOutcome{attempted: true, err: err}
	}

	if !s.table.CompareAndSwap(prev, &snapshot{rates: next, fetchedAt: now, live: true}) {
		return refreshOutcome{attempted: true, err: ErrSuperseded}
	}

	s.l.Infof(ctx, "%s: installed %d live rates (provider base %s, date %s)", LogPrefixRefresh, len(next), latest.Base, latest.Date)
	return refreshOutcome{attempted: true, refreshed: true}
}

// mergeLive overlays the provider rates, rebased to USD, on top of prev.
// Codes present in prev are never dropped.
func mergeLive(prev RateTable, latest exchangerate.Latest) (RateTable, error) {
	rates := make(map[string]float64, len(latest.Rates))
	for code, rate := range latest.Rates {
		rates[normalizeCode(code)] = rate
	}

	base := normalizeCode(latest.Base)
	if base == "" {
		base = BaseCurrency
	}

	factor := 1.0
	if base != BaseCurrency {
		usd, ok := rates[BaseCurrency]
		if !ok || !usable(usd) {
			return nil, fmt.Errorf("%w: base %s", ErrMissingBaseRate, base)
		}
		factor = usd
		rates[base] = 1.0
	}

	next := prev.Clone()
	accepted := 0
	for code, rate := range rates {
		if code == "" || !usable(rate) {
			continue
		}
		next[code] = rate / factor
		accepted++
	}
	if accepted == 0 {
		return nil, ErrNoUsableRates
	}

	next[BaseCurrency] = 1.0
	return next, nil
}

func usable(rate float64) bool {
	return rate > 0 && !math.IsInf(rate, 0) && !math.IsNaN(rate)
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func source(snap *snapshot) string {
	if snap.live {
		return "cached live"
	}
	return "fallback"
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, exchangerate.ErrUnavailable), errors.Is(err, context.DeadlineExceeded):
		return "provider unreachable"
	case errors.Is(err, exchangerate.ErrUnsuccessful):
		return "provider reported failure"
	case errors.Is(err, exchangerate.ErrMalformedResponse):
		return "malformed response"
	case errors.Is(err, exchangerate.ErrEmptyRates):
		return "empty rate map"
	default:
		return "fetch failed"
	}
}
