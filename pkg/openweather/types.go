package openweather

import (
	"fmt"
	"net/http"
	"time"
)

// Config holds OpenWeather client configuration
type Config struct {
	APIKey     string
	BaseURL    string
	Units      string
	HTTPClient *http.Client
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("openweather: APIKey is required")
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Units == "" {
		c.Units = DefaultUnits
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// Weather is the normalized current-conditions result.
type Weather struct {
	Location    string    // provider-normalized location name
	Country     string    // ISO country code, may be empty
	Temperature float64   // degrees Celsius with metric units
	FeelsLike   float64   // degrees Celsius
	Condition   string    // short text description, e.g. "light rain"
	Humidity    int       // percentage 0-100
	WindSpeed   float64   // m/s with metric units
	ObservedAt  time.Time // provider observation timestamp
}

// openWeatherImpl is the internal implementation of IOpenWeather
type openWeatherImpl struct {
	apiKey     string
	baseURL    string
	units      string
	httpClient *http.Client
}

// --- OpenWeather API wire format ---

type currentWeatherResponse struct {
	Name    string `json:"name"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Sys struct {
		Country string `json:"country"`
	} `json:"sys"`
	Dt int64 `json:"dt"`
}

type errorResponse struct {
	Cod     any    `json:"cod"` // the API returns this as number or string
	Message string `json:"message"`
}
