package currency

import (
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"travel-planner/pkg/log"
)

// Config configures the engine.
type Config struct {
	CacheTTL time.Duration
	// RefreshTimeout bounds a refresh independently of the caller that started it.
	RefreshTimeout time.Duration
}

type implService struct {
	l        log.Logger
	provider RateProvider
	ttl      time.Duration
	timeout  time.Duration

	table atomic.Pointer[snapshot]
	group singleflight.Group
}

var _ Service = (*implService)(nil)

// New creates the engine seeded with the static fallback table.
// provider may be nil, in which case the fallback table is served forever.
func New(l log.Logger, provider RateProvider, cfg Config) Service {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}
	if cfg.RefreshTimeout <= 0 {
		cfg.RefreshTimeout = DefaultRefreshTimeout
	}
	s := &implService{
		l:        l,
		provider: provider,
		ttl:      cfg.CacheTTL,
		timeout:  cfg.RefreshTimeout,
	}
	s.table.Store(&snapshot{rates: FallbackRates()})
	return s
}

func (s *implService) Rates() RateTable {
	return s.table.Load().rates.Clone()
}

func (s *implService) Status() Status {
	snap := s.table.Load()
	return Status{
		Live:       snap.live,
		FetchedAt:  snap.fetchedAt,
		Currencies: len(snap.rates),
	}
}

func (s *implService) isStale(snap *snapshot, now time.Time) bool {
	if !snap.live {
		return true
	}
	return now.Sub(snap.fetchedAt) >= s.ttl
}
