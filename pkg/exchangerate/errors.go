package exchangerate

import "errors"

var (
	// ErrUnavailable wraps transport failures (DNS, refused, timeout).
	ErrUnavailable = errors.New("exchange rate provider unavailable")
	// ErrUnsuccessful is returned for non-200 responses or a missing/false success flag.
	ErrUnsuccessful = errors.New("exchange rate provider reported failure")
	// ErrMalformedResponse is returned when the body cannot be decoded.
	ErrMalformedResponse = errors.New("malformed exchange rate response")
	// ErrEmptyRates is returned when the provider answered without any rates.
	ErrEmptyRates = errors.New("exchange rate response has no rates")
)
