package api

import (
	"context"

	"github.com/RidhamVashishth/Chatbot-using-Gemini/internal/models"
)

// ChatRequest is one streamed turn: prior history plus the parts of the new user message
type ChatRequest struct {
	Model       string
	Temperature *float32
	History     []models.Message
	Parts       []models.Part
}

// ChatBackend sends a turn upstream.
// StreamChat calls onChunk for each text fragment in arrival order and
// returns the concatenated reply.
type ChatBackend interface {
	StreamChat(ctx context.Context, req *ChatRequest, onChunk func(string)) (string, error)
	Close() error
}
