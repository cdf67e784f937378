package http

import (
	"weather-chatbot/internal/chat"
	"weather-chatbot/pkg/log"
)

// Handler is the public interface for the chat HTTP delivery layer.
type Handler interface {
	Send(c interface{})
}

type handler struct {
	l  log.Logger
	uc chat.UseCase
}

// New creates a new HTTP handler for the chat domain.
func New(l log.Logger, uc chat.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
