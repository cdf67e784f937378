package http

import (
	"weather-chatbot/internal/chat"
)

// --- Request DTOs ---

type sendReq struct {
	Message string `json:"message" binding:"max=2000"`
}

func (r sendReq) validate() error { return nil }

func (r sendReq) toInput() chat.RouteInput {
	return chat.RouteInput{
		Message: r.Message,
	}
}

// --- Response DTOs ---

type sendResp struct {
	Reply    string `json:"reply"`
	Intent   string `json:"intent,omitempty"`
	Provider string `json:"provider,omitempty"`
}

func (h *handler) newSendResp(out chat.RouteOutput) sendResp {
	return sendResp{
		Reply:    out.Reply,
		Intent:   string(out.Intent),
		Provider: out.Provider,
	}
}
