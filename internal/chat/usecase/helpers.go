package usecase

import (
	"fmt"

	"weather-chatbot/pkg/openweather"
)

// formatWeatherReply renders the deterministic weather reply template
// with the provider-normalized location name.
func formatWeatherReply(w openweather.Weather) string {
	location := w.Location
	if w.Country != "" {
		location = fmt.Sprintf("%s, %s", w.Location, w.Country)
	}
	return fmt.Sprintf(ReplyWeatherFmt,
		location, w.Condition, w.Temperature, w.FeelsLike, w.Humidity, w.WindSpeed)
}
