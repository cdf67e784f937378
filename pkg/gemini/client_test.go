package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"weather-chatbot/pkg/gemini"
)

func TestClient_GenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		// Read mock command
		text := req.Contents[0].Parts[0].Text
		switch text {
		case "cause_500":
			w.WriteHeader(http.StatusInternalServerError)
			return
		case "cause_empty":
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"candidates": []}`))
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"candidates": [
				{
					"content": {
						"parts": [
							{ "text": "mocked response string" }
						],
						"role": "model"
					}
				}
			],
			"usageMetadata": {"promptTokenCount": 4, "candidatesTokenCount": 3, "totalTokenCount": 7}
		}`))
	}))
	defer ts.Close()

	client, err := gemini.New(gemini.Config{
		APIKey:  "test-api-key",
		BaseURL: ts.URL,
	})
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}

	t.Run("Success Flow", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), &gemini.Request{
			Messages: []gemini.Message{{Role: "user", Text: "Hello world"}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text != "mocked response string" {
			t.Errorf("unexpected content response: %s", resp.Text)
		}
		if resp.Usage == nil || resp.Usage.TotalTokens != 7 {
			t.Errorf("expected usage metadata to be parsed")
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), &gemini.Request{
			Messages: []gemini.Message{{Role: "user", Text: "cause_500"}},
		})
		if err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})

	t.Run("Empty Candidates Flow", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), &gemini.Request{
			Messages: []gemini.Message{{Role: "user", Text: "cause_empty"}},
		})
		if err == nil {
			t.Fatalf("expected error from empty candidates")
		}
	})

	t.Run("Default Model", func(t *testing.T) {
		if client.Model() != gemini.DefaultModel {
			t.Errorf("expected default model, got %s", client.Model())
		}
	})
}
