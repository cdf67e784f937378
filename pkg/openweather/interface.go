package openweather

import "context"

// IOpenWeather defines the interface for the OpenWeather API client.
// Implementations are safe for concurrent use.
type IOpenWeather interface {
	// CurrentWeather fetches current conditions for a location name.
	// Returns ErrLocationNotFound when the provider has no data for it.
	CurrentWeather(ctx context.Context, location string) (Weather, error)
}

// New creates a new OpenWeather client with the given configuration
func New(cfg Config) (IOpenWeather, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newOpenWeatherImpl(cfg), nil
}
