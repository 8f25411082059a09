package currency

import "time"

// BaseCurrency is the unit every rate is expressed against.
const BaseCurrency = "USD"

// DefaultCacheTTL is how long a live table stays fresh.
const DefaultCacheTTL = time.Hour

// DefaultRefreshTimeout bounds one shared provider call.
const DefaultRefreshTimeout = 10 * time.Second

const refreshKey = "refresh"

// Log prefixes
const (
	LogPrefixRefresh   = "internal.currency.RefreshIfStale"
	LogPrefixConvert   = "internal.currency.Convert"
	LogPrefixNormalize = "internal.currency.Normalize"
)
