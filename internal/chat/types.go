package chat

import "weather-chatbot/internal/router"

// --- UseCase Inputs ---

// RouteInput carries a single user utterance. Nothing about it outlives
// the request: no identity, no history.
type RouteInput struct {
	Message string
}

// --- UseCase Outputs ---

// RouteOutput is the composed reply for one message.
type RouteOutput struct {
	Reply    string        // final user-facing text, always set
	Intent   router.Intent // classification result, empty for blank input
	Provider string        // collaborator consulted ("openweather", LLM name), empty if none
}
