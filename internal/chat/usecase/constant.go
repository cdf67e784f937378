package usecase

// Log prefixes
const (
	LogPrefixRoute = "chat.usecase.Route"
)

// Provider attribution values surfaced in RouteOutput.
const (
	ProviderOpenWeather = "openweather"
)

// Fixed replies. Wordings are part of the routing contract: the two
// weather failure classes must stay distinguishable in output.
const (
	ReplyEmptyInput = "Please say something so I can help you."

	ReplyMissingLocation = `Please tell me a location, e.g. "what's the weather in Paris?"`

	ReplyWeatherNotFoundFmt = "Sorry, I couldn't find weather data for %q. Please check the location name."

	ReplyWeatherUpstream = "Sorry, the weather service is having trouble right now. Please try again in a moment."

	ReplyAnswerUpstream = "Sorry, I couldn't come up with an answer right now. Please try again in a moment."

	// ReplyWeatherFmt embeds location, condition, temperature, feels-like,
	// humidity and wind into a deterministic template.
	ReplyWeatherFmt = "Current weather in %s: %s, %.0f°C (feels like %.0f°C), humidity %d%%, wind %.1f m/s."
)
