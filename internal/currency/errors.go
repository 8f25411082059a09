package currency

import "errors"

var (
	// ErrProviderNotConfigured is reported when no live provider is wired.
	ErrProviderNotConfigured = errors.New("currency rate provider not configured")
	// ErrMissingBaseRate is reported when a non-USD response cannot be rebased.
	ErrMissingBaseRate = errors.New("live rates cannot be rebased to USD")
	// ErrNoUsableRates is reported when every live rate was rejected.
	ErrNoUsableRates = errors.New("live response has no usable rates")
	// ErrSuperseded is reported when another refresh installed a table first.
	ErrSuperseded = errors.New("refresh superseded by a newer table")
)
