package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// newOpenWeatherImpl creates a new OpenWeather implementation
func newOpenWeatherImpl(cfg Config) *openWeatherImpl {
	return &openWeatherImpl{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		units:      cfg.Units,
		httpClient: cfg.HTTPClient,
	}
}

// CurrentWeather fetches current conditions for a location name
func (o *openWeatherImpl) CurrentWeather(ctx context.Context, location string) (Weather, error) {
	params := url.Values{}
	params.Set("q", location)
	params.Set("appid", o.apiKey)
	params.Set("units", o.units)

	reqURL := fmt.Sprintf("%s/weather?%s", o.baseURL, params.Encode())

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return Weather{}, fmt.Errorf("openweather: failed to create request: %w", err)
	}

	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return Weather{}, fmt.Errorf("openweather: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return Weather{}, fmt.Errorf("%w: %q", ErrLocationNotFound, location)
	}

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		var errResp errorResponse
		if jsonErr := json.Unmarshal(bodyBytes, &errResp); jsonErr == nil && errResp.Message != "" {
			return Weather{}, fmt.Errorf("openweather: API error %d: %s", resp.StatusCode, errResp.Message)
		}
		return Weather{}, fmt.Errorf("openweather: API error %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var raw currentWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return Weather{}, fmt.Errorf("openweather: failed to decode response: %w", err)
	}

	return o.transformResponse(location, &raw), nil
}

// transformResponse converts the wire format to the normalized Weather value
func (o *openWeatherImpl) transformResponse(requested string, raw *currentWeatherResponse) Weather {
	w := Weather{
		Location:    raw.Name,
		Country:     raw.Sys.Country,
		Temperature: raw.Main.Temp,
		FeelsLike:   raw.Main.FeelsLike,
		Humidity:    raw.Main.Humidity,
		WindSpeed:   raw.Wind.Speed,
	}
	if w.Location == "" {
		w.Location = requested
	}
	if len(raw.Weather) > 0 {
		w.Condition = raw.Weather[0].Description
		if w.Condition == "" {
			w.Condition = raw.Weather[0].Main
		}
	}
	if raw.Dt > 0 {
		w.ObservedAt = time.Unix(raw.Dt, 0).UTC()
	}
	return w
}
