package router

// Intent represents user's intention
type Intent string

const (
	// IntentWeather routes the message to the weather provider
	IntentWeather Intent = "WEATHER"

	// IntentGeneral routes the message to the LLM answer provider
	IntentGeneral Intent = "GENERAL"
)

// RouterOutput is the structured classification result
type RouterOutput struct {
	Intent         Intent
	MatchedKeyword string // the keyword that triggered IntentWeather, empty otherwise
	Location       string // extracted location text, only set when HasLocation
	HasLocation    bool   // distinguishes "no location in message" from empty string
}
