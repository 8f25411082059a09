package openweather

import "time"

const (
	// DefaultBaseURL is the OpenWeather API endpoint
	DefaultBaseURL = "https://api.openweathermap.org"

	// DefaultUnits selects Celsius temperatures
	DefaultUnits = "metric"

	// DefaultTimeout bounds every call
	DefaultTimeout = 30 * time.Second
)
