package openweather

import "errors"

var (
	ErrAPIKeyRequired    = errors.New("openweather API key is required")
	ErrCityNotFound      = errors.New("city not found")
	ErrUnavailable       = errors.New("weather service unavailable")
	ErrMalformedResponse = errors.New("malformed weather response")
)
