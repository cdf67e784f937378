package router

import (
	"context"

	"weather-chatbot/pkg/log"
)

// Router is the interface for message intent routing
type Router interface {
	Classify(ctx context.Context, message string) RouterOutput
}

// KeywordRouter classifies user intent with a fixed keyword rule list.
// Classification is a pure function over the message text: no providers
// are contacted and no state is kept between calls.
type KeywordRouter struct {
	l log.Logger
}

// Ensure KeywordRouter implements Router interface
var _ Router = (*KeywordRouter)(nil)

// New creates a new KeywordRouter
// Convention: Factory function returns concrete type (not interface) for internal packages
func New(l log.Logger) *KeywordRouter {
	return &KeywordRouter{
		l: l,
	}
}
