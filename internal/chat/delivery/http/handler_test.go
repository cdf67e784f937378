package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"weather-chatbot/internal/chat"
	"weather-chatbot/internal/router"
	"weather-chatbot/pkg/response"
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

type mockUseCase struct {
	output    chat.RouteOutput
	lastInput chat.RouteInput
	calls     int
}

func (m *mockUseCase) Route(ctx context.Context, input chat.RouteInput) (chat.RouteOutput, error) {
	m.calls++
	m.lastInput = input
	return m.output, nil
}

func setupTestRouter(uc chat.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(&mockLogger{}, uc)
	RegisterRoutes(r.Group("/api/v1"), h)
	return r
}

func postChat(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSend(t *testing.T) {
	t.Run("weather reply", func(t *testing.T) {
		uc := &mockUseCase{
			output: chat.RouteOutput{
				Reply:    "Current weather in Paris, FR: cloudy, 18°C (feels like 17°C), humidity 70%, wind 3.6 m/s.",
				Intent:   router.IntentWeather,
				Provider: "openweather",
			},
		}
		r := setupTestRouter(uc)

		w := postChat(t, r, `{"message": "what's the weather in Paris?"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
		}

		var resp response.Resp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if resp.ErrorCode != 0 {
			t.Errorf("error_code = %d, want 0", resp.ErrorCode)
		}

		data, ok := resp.Data.(map[string]interface{})
		if !ok {
			t.Fatalf("data is %T, want object", resp.Data)
		}
		if data["intent"] != "WEATHER" {
			t.Errorf("intent = %v, want WEATHER", data["intent"])
		}
		if data["provider"] != "openweather" {
			t.Errorf("provider = %v, want openweather", data["provider"])
		}
		if uc.lastInput.Message != "what's the weather in Paris?" {
			t.Errorf("usecase received %q", uc.lastInput.Message)
		}
	})

	t.Run("empty message still reaches the usecase", func(t *testing.T) {
		uc := &mockUseCase{
			output: chat.RouteOutput{Reply: "Please say something so I can help you."},
		}
		r := setupTestRouter(uc)

		w := postChat(t, r, `{"message": ""}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
		}
		if uc.calls != 1 {
			t.Errorf("usecase calls = %d, want 1", uc.calls)
		}
	})

	t.Run("missing message field still reaches the usecase", func(t *testing.T) {
		uc := &mockUseCase{
			output: chat.RouteOutput{Reply: "Please say something so I can help you."},
		}
		r := setupTestRouter(uc)

		w := postChat(t, r, `{}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
		}
		if uc.calls != 1 {
			t.Errorf("usecase calls = %d, want 1", uc.calls)
		}
	})

	t.Run("malformed JSON is rejected before the usecase", func(t *testing.T) {
		uc := &mockUseCase{}
		r := setupTestRouter(uc)

		w := postChat(t, r, `{"message": `)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
		}
		if uc.calls != 0 {
			t.Errorf("usecase calls = %d, want 0", uc.calls)
		}
	})
}
