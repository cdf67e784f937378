package usecase

import (
	"weather-chatbot/internal/router"
	pkgLog "weather-chatbot/pkg/log"
	"weather-chatbot/pkg/llmprovider"
	"weather-chatbot/pkg/openweather"
)

type implUseCase struct {
	l       pkgLog.Logger
	router  router.Router
	weather openweather.IOpenWeather
	llm     llmprovider.Provider
}

// New creates a new chat UseCase instance.
func New(
	l pkgLog.Logger,
	r router.Router,
	weather openweather.IOpenWeather,
	llm llmprovider.Provider,
) *implUseCase {
	return &implUseCase{
		l:       l,
		router:  r,
		weather: weather,
		llm:     llm,
	}
}
