package api

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	apierrors "github.com/RidhamVashishth/Chatbot-using-Gemini/internal/errors"
	"github.com/RidhamVashishth/Chatbot-using-Gemini/internal/history"
	"github.com/RidhamVashishth/Chatbot-using-Gemini/internal/models"
)

// ChatSession holds one conversation and at most one pending attachment.
// The attachment is injected into the next message only.
type ChatSession struct {
	client  *GeminiClient
	conv    *history.Conversation
	mu      sync.RWMutex // Protects model, pending
	model   models.Model
	pending *models.Attachment
}

func newChatSession(client *GeminiClient, model models.Model) *ChatSession {
	return &ChatSession{
		client: client,
		conv:   history.New(model.Name),
		model:  model,
	}
}

// Attach sets the file context for the next message, replacing any pending one
func (s *ChatSession) Attach(att *models.Attachment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = att
}

// Attachment returns the pending attachment, or nil
func (s *ChatSession) Attachment() *models.Attachment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pending
}

// Detach drops the pending attachment and returns it
func (s *ChatSession) Detach() *models.Attachment {
	s.mu.Lock()
	defer s.mu.Unlock()
	att := s.pending
	s.pending = nil
	return att
}

// SendMessage sends prompt with the pending attachment and streams the reply
// through onChunk (which may be nil). The attachment is consumed whatever the
// outcome. On failure the error notice is recorded as the assistant turn and
// the error is returned.
func (s *ChatSession) SendMessage(ctx context.Context, prompt string, onChunk func(string)) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", apierrors.ErrEmptyPrompt
	}

	s.mu.Lock()
	att := s.pending
	s.pending = nil
	model := s.model
	s.mu.Unlock()

	req := &ChatRequest{
		Model:       model.Name,
		Temperature: s.client.temperature,
		History:     s.conv.Messages(),
		Parts:       BuildPrompt(s.client.SystemPrompt(), att, prompt),
	}

	userMsg := models.Message{Role: models.RoleUser, Content: prompt}
	if att != nil {
		userMsg.Attachment = att.Name
	}

	logger := s.client.logger.With(
		zap.String("model", model.Name),
		zap.String("conversation", s.conv.ID()),
	)

	start := time.Now()
	reply, err := s.client.backend.StreamChat(ctx, req, onChunk)
	if err == nil && strings.TrimSpace(reply) == "" {
		err = apierrors.ErrNoContent
	}
	if err != nil {
		logger.Warn("message failed",
			zap.Duration("elapsed", time.Since(start)),
			zap.String("error_code", apierrors.GetErrorCode(err).String()),
			zap.Error(err),
		)
		s.conv.Append(userMsg, models.Message{
			Role:    models.RoleAssistant,
			Content: ErrorNotice(err),
			Error:   true,
		})
		return "", err
	}

	logger.Info("message sent",
		zap.Duration("elapsed", time.Since(start)),
		zap.String("attachment", userMsg.Attachment),
		zap.Int("history", len(req.History)),
		zap.Int("reply_chars", len(reply)),
	)
	s.conv.Append(userMsg, models.Message{Role: models.RoleAssistant, Content: reply})
	return reply, nil
}

// History returns a copy of the conversation log
func (s *ChatSession) History() []models.Message {
	return s.conv.Messages()
}

// Conversation returns the underlying log, for export
func (s *ChatSession) Conversation() *history.Conversation {
	return s.conv
}

// Reset clears the history and the pending attachment
func (s *ChatSession) Reset() {
	s.mu.Lock()
	s.pending = nil
	s.mu.Unlock()
	s.conv.Reset()
}

// GetModel returns the session's model
func (s *ChatSession) GetModel() models.Model {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.model
}

// SetModel changes the session's model for subsequent messages
func (s *ChatSession) SetModel(model models.Model) {
	s.mu.Lock()
	s.model = model
	s.mu.Unlock()
	s.conv.SetModel(model.Name)
}
