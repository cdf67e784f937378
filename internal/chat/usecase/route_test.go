package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"weather-chatbot/internal/chat"
	"weather-chatbot/internal/router"
	"weather-chatbot/pkg/openweather"
)

func newTestUseCase(weather *stubWeather, llm *stubProvider) chat.UseCase {
	l := &mockLogger{}
	return New(l, router.New(l), weather, llm)
}

func TestRoute_EmptyInput(t *testing.T) {
	tests := []struct {
		name    string
		message string
	}{
		{name: "empty string", message: ""},
		{name: "spaces only", message: "   "},
		{name: "tabs and newlines", message: "\t\n "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			weather := &stubWeather{}
			llm := &stubProvider{text: "should not be used"}
			uc := newTestUseCase(weather, llm)

			out, err := uc.Route(context.Background(), chat.RouteInput{Message: tt.message})
			if err != nil {
				t.Fatalf("Route() error = %v, want nil", err)
			}
			if out.Reply != ReplyEmptyInput {
				t.Errorf("Reply = %q, want %q", out.Reply, ReplyEmptyInput)
			}
			if weather.calls != 0 {
				t.Errorf("weather calls = %d, want 0", weather.calls)
			}
			if llm.calls != 0 {
				t.Errorf("llm calls = %d, want 0", llm.calls)
			}
		})
	}
}

func TestRoute_WeatherSuccess(t *testing.T) {
	weather := &stubWeather{
		result: openweather.Weather{
			Location:    "Paris",
			Country:     "FR",
			Temperature: 18.0,
			FeelsLike:   17.2,
			Condition:   "cloudy",
			Humidity:    70,
			WindSpeed:   3.6,
		},
	}
	llm := &stubProvider{text: "should not be used"}
	uc := newTestUseCase(weather, llm)

	out, err := uc.Route(context.Background(), chat.RouteInput{Message: "What's the weather in Paris?"})
	if err != nil {
		t.Fatalf("Route() error = %v, want nil", err)
	}

	if weather.calls != 1 {
		t.Fatalf("weather calls = %d, want 1", weather.calls)
	}
	if weather.lastQuery != "Paris" {
		t.Errorf("weather query = %q, want %q", weather.lastQuery, "Paris")
	}
	if llm.calls != 0 {
		t.Errorf("llm calls = %d, want 0", llm.calls)
	}
	if out.Intent != router.IntentWeather {
		t.Errorf("Intent = %q, want %q", out.Intent, router.IntentWeather)
	}
	if out.Provider != ProviderOpenWeather {
		t.Errorf("Provider = %q, want %q", out.Provider, ProviderOpenWeather)
	}

	for _, want := range []string{"Paris", "18", "cloudy", "70"} {
		if !strings.Contains(out.Reply, want) {
			t.Errorf("Reply = %q, want it to contain %q", out.Reply, want)
		}
	}
}

func TestRoute_WeatherMissingLocation(t *testing.T) {
	tests := []struct {
		name    string
		message string
	}{
		{name: "bare keyword", message: "weather"},
		{name: "question without place", message: "how is the weather today?"},
		{name: "forecast without place", message: "give me the forecast"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			weather := &stubWeather{}
			llm := &stubProvider{text: "should not be used"}
			uc := newTestUseCase(weather, llm)

			out, err := uc.Route(context.Background(), chat.RouteInput{Message: tt.message})
			if err != nil {
				t.Fatalf("Route() error = %v, want nil", err)
			}
			if out.Reply != ReplyMissingLocation {
				t.Errorf("Reply = %q, want %q", out.Reply, ReplyMissingLocation)
			}
			if weather.calls != 0 {
				t.Errorf("weather calls = %d, want 0", weather.calls)
			}
			if llm.calls != 0 {
				t.Errorf("llm calls = %d, want 0", llm.calls)
			}
		})
	}
}

func TestRoute_WeatherLocationNotFound(t *testing.T) {
	weather := &stubWeather{
		err: fmt.Errorf("%w: %q", openweather.ErrLocationNotFound, "Nowhereville"),
	}
	llm := &stubProvider{}
	uc := newTestUseCase(weather, llm)

	out, err := uc.Route(context.Background(), chat.RouteInput{Message: "weather in Nowhereville"})
	if err != nil {
		t.Fatalf("Route() error = %v, want nil", err)
	}

	want := fmt.Sprintf(ReplyWeatherNotFoundFmt, "Nowhereville")
	if out.Reply != want {
		t.Errorf("Reply = %q, want %q", out.Reply, want)
	}
	if llm.calls != 0 {
		t.Errorf("llm calls = %d, want 0", llm.calls)
	}
}

func TestRoute_WeatherUpstreamError(t *testing.T) {
	weather := &stubWeather{
		err: errors.New("openweather: unexpected status 500"),
	}
	llm := &stubProvider{}
	uc := newTestUseCase(weather, llm)

	out, err := uc.Route(context.Background(), chat.RouteInput{Message: "weather in Paris"})
	if err != nil {
		t.Fatalf("Route() error = %v, want nil", err)
	}

	if out.Reply != ReplyWeatherUpstream {
		t.Errorf("Reply = %q, want %q", out.Reply, ReplyWeatherUpstream)
	}

	notFound := fmt.Sprintf(ReplyWeatherNotFoundFmt, "Paris")
	if out.Reply == notFound {
		t.Error("upstream failure reply must differ from not-found reply")
	}
}

func TestRoute_GeneralQuestion(t *testing.T) {
	const answer = "Why did the scarecrow win an award? Because he was outstanding in his field."

	weather := &stubWeather{}
	llm := &stubProvider{text: answer}
	uc := newTestUseCase(weather, llm)

	out, err := uc.Route(context.Background(), chat.RouteInput{Message: "Tell me a joke"})
	if err != nil {
		t.Fatalf("Route() error = %v, want nil", err)
	}

	if llm.calls != 1 {
		t.Fatalf("llm calls = %d, want 1", llm.calls)
	}
	if llm.lastPrompt != "Tell me a joke" {
		t.Errorf("llm prompt = %q, want %q", llm.lastPrompt, "Tell me a joke")
	}
	if weather.calls != 0 {
		t.Errorf("weather calls = %d, want 0", weather.calls)
	}
	if out.Reply != answer {
		t.Errorf("Reply = %q, want answer passed through unmodified", out.Reply)
	}
	if out.Intent != router.IntentGeneral {
		t.Errorf("Intent = %q, want %q", out.Intent, router.IntentGeneral)
	}
	if out.Provider != "stub-llm" {
		t.Errorf("Provider = %q, want %q", out.Provider, "stub-llm")
	}
}

func TestRoute_GeneralUpstreamError(t *testing.T) {
	weather := &stubWeather{}
	llm := &stubProvider{err: errors.New("gemini: unexpected status 503")}
	uc := newTestUseCase(weather, llm)

	out, err := uc.Route(context.Background(), chat.RouteInput{Message: "Tell me a joke"})
	if err != nil {
		t.Fatalf("Route() error = %v, want nil", err)
	}
	if out.Reply != ReplyAnswerUpstream {
		t.Errorf("Reply = %q, want %q", out.Reply, ReplyAnswerUpstream)
	}
	if llm.calls != 1 {
		t.Errorf("llm calls = %d, want 1", llm.calls)
	}
}

func TestRoute_SingleProviderPerRequest(t *testing.T) {
	tests := []struct {
		name        string
		message     string
		wantWeather int
		wantLLM     int
	}{
		{name: "weather with location", message: "temperature in Hanoi", wantWeather: 1, wantLLM: 0},
		{name: "general question", message: "who wrote Dune?", wantWeather: 0, wantLLM: 1},
		{name: "weather without location", message: "is it sunny?", wantWeather: 0, wantLLM: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			weather := &stubWeather{result: openweather.Weather{Location: "Hanoi", Condition: "clear sky"}}
			llm := &stubProvider{text: "Frank Herbert"}
			uc := newTestUseCase(weather, llm)

			if _, err := uc.Route(context.Background(), chat.RouteInput{Message: tt.message}); err != nil {
				t.Fatalf("Route() error = %v, want nil", err)
			}
			if weather.calls != tt.wantWeather {
				t.Errorf("weather calls = %d, want %d", weather.calls, tt.wantWeather)
			}
			if llm.calls != tt.wantLLM {
				t.Errorf("llm calls = %d, want %d", llm.calls, tt.wantLLM)
			}
		})
	}
}

func TestRoute_Deterministic(t *testing.T) {
	weather := &stubWeather{
		result: openweather.Weather{Location: "Tokyo", Country: "JP", Temperature: 25, FeelsLike: 26, Condition: "light rain", Humidity: 80, WindSpeed: 2.1},
	}
	llm := &stubProvider{text: "same answer"}
	uc := newTestUseCase(weather, llm)

	first, err := uc.Route(context.Background(), chat.RouteInput{Message: "rain in Tokyo?"})
	if err != nil {
		t.Fatalf("Route() error = %v, want nil", err)
	}
	second, err := uc.Route(context.Background(), chat.RouteInput{Message: "rain in Tokyo?"})
	if err != nil {
		t.Fatalf("Route() error = %v, want nil", err)
	}

	if first.Reply != second.Reply || first.Intent != second.Intent {
		t.Errorf("repeated input gave different outputs: %+v vs %+v", first, second)
	}
}
