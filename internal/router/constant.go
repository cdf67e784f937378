package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// weatherKeywords is the ordered, fixed rule list for weather intent.
// Matching is case-insensitive on whole words; the first keyword found
// in the message wins.
var weatherKeywords = []string{
	"weather",
	"temperature",
	"forecast",
	"rain",
	"raining",
	"rainy",
	"sunny",
	"snow",
	"snowing",
	"cloudy",
	"storm",
	"climate",
	"humidity",
	"wind",
	"windy",
}

// locationCutset is trimmed from the edges of an extracted location.
const locationCutset = " \t.,!?;:'\""
