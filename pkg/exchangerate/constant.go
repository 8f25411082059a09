package exchangerate

import "time"

const (
	// DefaultBaseURL is the default exchange rate API endpoint
	DefaultBaseURL = "https://api.exchangerate.host"

	// DefaultBase is the base currency requested from the provider
	DefaultBase = "USD"

	// DefaultTimeout bounds every call to the provider
	DefaultTimeout = 30 * time.Second
)
