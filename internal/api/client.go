// Package api talks to the Gemini API: it assembles each turn's prompt,
// keeps the chat session and streams replies.
package api

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	apierrors "github.com/RidhamVashishth/Chatbot-using-Gemini/internal/errors"
	"github.com/RidhamVashishth/Chatbot-using-Gemini/internal/models"
)

// GeminiClientInterface is what the commands and the TUI need from a client
type GeminiClientInterface interface {
	StartChat(model ...models.Model) *ChatSession
	GetModel() models.Model
	SetModel(model models.Model)
	Close() error
}

var _ GeminiClientInterface = (*GeminiClient)(nil)

// GeminiClient is the main client for interacting with the Gemini API
type GeminiClient struct {
	backend      ChatBackend
	model        models.Model
	systemPrompt string
	temperature  *float32
	logger       *zap.Logger
	mu           sync.RWMutex
	closed       bool
}

// ClientOption is a function that configures the client
type ClientOption func(*GeminiClient)

// WithModel sets the default model for the client
func WithModel(model models.Model) ClientOption {
	return func(c *GeminiClient) {
		if model.Name != "" {
			c.model = model
		}
	}
}

// WithSystemPrompt replaces the grounding instruction sent with every turn
func WithSystemPrompt(prompt string) ClientOption {
	return func(c *GeminiClient) {
		if strings.TrimSpace(prompt) != "" {
			c.systemPrompt = prompt
		}
	}
}

// WithTemperature sets the sampling temperature
func WithTemperature(t float32) ClientOption {
	return func(c *GeminiClient) {
		c.temperature = &t
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *GeminiClient) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a GeminiClient authenticated with apiKey
func NewClient(ctx context.Context, apiKey string, opts ...ClientOption) (*GeminiClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, apierrors.ErrMissingAPIKey
	}

	backend, err := newGenaiBackend(ctx, apiKey)
	if err != nil {
		return nil, err
	}
	return NewClientWithBackend(backend, opts...), nil
}

// NewClientWithBackend creates a GeminiClient on top of an existing backend
func NewClientWithBackend(backend ChatBackend, opts ...ClientOption) *GeminiClient {
	client := &GeminiClient{
		backend:      backend,
		model:        models.DefaultModel,
		systemPrompt: DefaultSystemPrompt,
		logger:       zap.NewNop(),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Close shuts down the client
func (c *GeminiClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	return c.backend.Close()
}

// IsClosed reports whether Close has been called
func (c *GeminiClient) IsClosed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.closed
}

// GetModel returns the default model
func (c *GeminiClient) GetModel() models.Model {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.model
}

// SetModel changes the default model for new sessions
func (c *GeminiClient) SetModel(model models.Model) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.model = model
}

// SystemPrompt returns the instruction sent at the start of every turn
func (c *GeminiClient) SystemPrompt() string {
	return c.systemPrompt
}

// StartChat creates a new chat session, optionally overriding the model
func (c *GeminiClient) StartChat(model ...models.Model) *ChatSession {
	m := c.GetModel()
	if len(model) > 0 && model[0].Name != "" {
		m = model[0]
	}
	return newChatSession(c, m)
}
