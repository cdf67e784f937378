package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"weather-chatbot/internal/chat"
	"weather-chatbot/internal/router"
	"weather-chatbot/pkg/llmprovider"
	"weather-chatbot/pkg/openweather"
)

// Route handles one message: classify, dispatch to at most one provider,
// format the reply. Strictly sequential, no retries, no shared state.
func (uc *implUseCase) Route(ctx context.Context, input chat.RouteInput) (chat.RouteOutput, error) {
	if strings.TrimSpace(input.Message) == "" {
		return chat.RouteOutput{Reply: ReplyEmptyInput}, nil
	}

	out := uc.router.Classify(ctx, input.Message)

	if out.Intent == router.IntentWeather {
		return uc.routeWeather(ctx, out), nil
	}
	return uc.routeGeneral(ctx, input.Message), nil
}

// routeWeather answers a weather-intent message from the weather provider.
func (uc *implUseCase) routeWeather(ctx context.Context, out router.RouterOutput) chat.RouteOutput {
	// Never call the provider without a location to ask about.
	if !out.HasLocation {
		return chat.RouteOutput{
			Reply:  ReplyMissingLocation,
			Intent: router.IntentWeather,
		}
	}

	w, err := uc.weather.CurrentWeather(ctx, out.Location)
	if err != nil {
		uc.l.Errorf(ctx, "%s: weather lookup for %q failed: %v", LogPrefixRoute, out.Location, err)

		reply := ReplyWeatherUpstream
		if errors.Is(err, openweather.ErrLocationNotFound) {
			reply = fmt.Sprintf(ReplyWeatherNotFoundFmt, out.Location)
		}
		return chat.RouteOutput{
			Reply:    reply,
			Intent:   router.IntentWeather,
			Provider: ProviderOpenWeather,
		}
	}

	return chat.RouteOutput{
		Reply:    formatWeatherReply(w),
		Intent:   router.IntentWeather,
		Provider: ProviderOpenWeather,
	}
}

// routeGeneral forwards the message to the LLM provider as-is and passes
// the generated answer through unmodified.
func (uc *implUseCase) routeGeneral(ctx context.Context, message string) chat.RouteOutput {
	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		Messages: []llmprovider.Message{
			{Role: "user", Text: message},
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: LLM call failed: %v", LogPrefixRoute, err)
		return chat.RouteOutput{
			Reply:    ReplyAnswerUpstream,
			Intent:   router.IntentGeneral,
			Provider: uc.llm.Name(),
		}
	}

	return chat.RouteOutput{
		Reply:    resp.Text,
		Intent:   router.IntentGeneral,
		Provider: resp.ProviderName,
	}
}
