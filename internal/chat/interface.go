package chat

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Route classifies the message, dispatches to at most one provider and
	// composes the reply. It always produces a user-facing reply: provider
	// failures are folded into the reply text, never returned as errors.
	Route(ctx context.Context, input RouteInput) (RouteOutput, error)
}
