package openweather

import "time"

const (
	// DefaultBaseURL is the OpenWeather current-conditions endpoint
	DefaultBaseURL = "https://api.openweathermap.org/data/2.5"

	// DefaultUnits requests Celsius temperatures and m/s wind speed
	DefaultUnits = "metric"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 10 * time.Second
)
