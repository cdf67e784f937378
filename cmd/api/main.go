package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"weather-chatbot/config"
	"weather-chatbot/internal/chat/usecase"
	"weather-chatbot/internal/httpserver"
	"weather-chatbot/internal/router"
	"weather-chatbot/internal/test"
	"weather-chatbot/pkg/llmprovider"
	"weather-chatbot/pkg/log"
	"weather-chatbot/pkg/openweather"
)

// @title       Weather Chatbot API
// @description Conversational API that answers weather questions from OpenWeather and everything else via an LLM.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Weather Chatbot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Upstream clients
	weatherClient, err := openweather.New(openweather.Config{
		APIKey:     cfg.OpenWeather.APIKey,
		BaseURL:    cfg.OpenWeather.BaseURL,
		Units:      cfg.OpenWeather.Units,
		HTTPClient: &http.Client{Timeout: cfg.OpenWeather.Timeout},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize OpenWeather client: ", err)
		os.Exit(1)
	}

	llm, err := llmprovider.New(llmprovider.FactoryConfig{
		Provider: cfg.LLM.Provider,
		APIKey:   cfg.LLM.APIKey,
		Model:    cfg.LLM.Model,
		BaseURL:  cfg.LLM.BaseURL,
		Timeout:  cfg.LLM.Timeout,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM provider: ", err)
		os.Exit(1)
	}
	logger.Infof(ctx, "LLM provider: %s (%s)", llm.Name(), llm.Model())

	// 4. Chat domain
	intentRouter := router.New(logger)
	chatUC := usecase.New(logger, intentRouter, weatherClient, llm)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		StaticDir:   cfg.HTTPServer.StaticDir,
		ChatUseCase: chatUC,
		TestHandler: test.New(logger, intentRouter),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
