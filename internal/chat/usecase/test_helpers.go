package usecase

import (
	"context"

	"weather-chatbot/pkg/llmprovider"
	"weather-chatbot/pkg/openweather"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// stubWeather implements openweather.IOpenWeather and records calls.
type stubWeather struct {
	result    openweather.Weather
	err       error
	calls     int
	lastQuery string
}

func (s *stubWeather) CurrentWeather(ctx context.Context, location string) (openweather.Weather, error) {
	s.calls++
	s.lastQuery = location
	return s.result, s.err
}

// stubProvider implements llmprovider.Provider and records calls.
type stubProvider struct {
	text       string
	err        error
	calls      int
	lastPrompt string
}

func (s *stubProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	s.calls++
	if len(req.Messages) > 0 {
		s.lastPrompt = req.Messages[len(req.Messages)-1].Text
	}
	if s.err != nil {
		return nil, s.err
	}
	return &llmprovider.Response{
		Text:         s.text,
		ProviderName: s.Name(),
		ModelName:    s.Model(),
	}, nil
}

func (s *stubProvider) Name() string  { return "stub-llm" }
func (s *stubProvider) Model() string { return "stub-model" }
