package llmprovider

import (
	"fmt"
	"net/http"
	"time"

	"weather-chatbot/pkg/deepseek"
	"weather-chatbot/pkg/gemini"
	"weather-chatbot/pkg/qwen"
)

// FactoryConfig selects and configures the single active provider.
type FactoryConfig struct {
	Provider string // "gemini", "deepseek", "qwen" (or "alibaba")
	APIKey   string
	Model    string
	BaseURL  string
	Timeout  time.Duration
}

// New creates the configured Provider instance. Exactly one provider is
// active per process; there is no fallback chain and no retry wrapper.
func New(cfg FactoryConfig) (Provider, error) {
	if cfg.Provider == "" {
		return nil, ErrNoProviderConfigured
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Provider)
	}

	var httpClient *http.Client
	if cfg.Timeout > 0 {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	switch cfg.Provider {
	case "gemini":
		client, err := gemini.New(gemini.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			BaseURL:    cfg.BaseURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	case "deepseek":
		client, err := deepseek.New(deepseek.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			BaseURL:    cfg.BaseURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create deepseek client: %w", err)
		}
		return NewDeepSeekAdapter(client), nil

	case "qwen", "alibaba":
		client, err := qwen.New(qwen.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			BaseURL:    cfg.BaseURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create qwen client: %w", err)
		}
		return NewQwenAdapter(client), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, cfg.Provider)
	}
}
