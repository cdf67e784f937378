package test

import (
	"github.com/gin-gonic/gin"

	"weather-chatbot/internal/router"
	pkgLog "weather-chatbot/pkg/log"
)

// Handler is the interface for the test handler
type Handler interface {
	HandleClassify(c *gin.Context)
}

type handler struct {
	l      pkgLog.Logger
	router router.Router
}

// New creates a test handler that exposes the intent classifier directly.
func New(l pkgLog.Logger, r router.Router) Handler {
	return &handler{
		l:      l,
		router: r,
	}
}
