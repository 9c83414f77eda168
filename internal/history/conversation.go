// Package history holds the in-memory conversation log and exports it as a transcript.
package history

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/RidhamVashishth/Chatbot-using-Gemini/internal/models"
)

const maxTitleLen = 50

// Conversation is the ordered log of one chat session.
// It is safe for concurrent use.
type Conversation struct {
	mu        sync.RWMutex
	id        string
	title     string
	model     string
	createdAt time.Time
	updatedAt time.Time
	messages  []models.Message
}

// New creates an empty conversation for model
func New(model string) *Conversation {
	c := &Conversation{model: model}
	c.reset(time.Now())
	return c
}

func (c *Conversation) reset(now time.Time) {
	c.id = uuid.NewString()
	c.title = defaultTitle(now)
	c.createdAt = now
	c.updatedAt = now
	c.messages = nil
}

func defaultTitle(t time.Time) string {
	return fmt.Sprintf("Chat %s", t.Format("2006-01-02 15:04"))
}

// ID returns the conversation identifier
func (c *Conversation) ID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.id
}

// Title returns the conversation title
func (c *Conversation) Title() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.title
}

// SetTitle overrides the conversation title
func (c *Conversation) SetTitle(title string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.title = title
	c.updatedAt = time.Now()
}

// Model returns the model the conversation is using
func (c *Conversation) Model() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.model
}

// SetModel records a model switch
func (c *Conversation) SetModel(model string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.model = model
	c.updatedAt = time.Now()
}

// CreatedAt returns when the conversation was started or last reset
func (c *Conversation) CreatedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.createdAt
}

// UpdatedAt returns when the conversation last changed
func (c *Conversation) UpdatedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.updatedAt
}

// Append adds messages to the end of the log, stamping any without a timestamp.
// The first user message becomes the title.
func (c *Conversation) Append(msgs ...models.Message) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for _, msg := range msgs {
		if msg.Timestamp.IsZero() {
			msg.Timestamp = now
		}
		if msg.IsUser() && !c.hasUserMessage() {
			c.title = titleFrom(msg.Content)
		}
		c.messages = append(c.messages, msg)
	}
	c.updatedAt = now
}

func (c *Conversation) hasUserMessage() bool {
	for _, m := range c.messages {
		if m.IsUser() {
			return true
		}
	}
	return false
}

func titleFrom(content string) string {
	runes := []rune(content)
	if len(runes) > maxTitleLen {
		return string(runes[:maxTitleLen]) + "..."
	}
	return content
}

// Messages returns a copy of the log
func (c *Conversation) Messages() []models.Message {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Len returns the number of messages
func (c *Conversation) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.messages)
}

// LastReply returns the most recent assistant message that is not an error notice
func (c *Conversation) LastReply() (models.Message, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for i := len(c.messages) - 1; i >= 0; i-- {
		m := c.messages[i]
		if m.Role == models.RoleAssistant && !m.Error {
			return m, true
		}
	}
	return models.Message{}, false
}

// Reset clears the log and starts a new conversation with the same model
func (c *Conversation) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reset(time.Now())
}

// snapshot is a consistent copy used by the exporters
type snapshot struct {
	id        string
	title     string
	model     string
	createdAt time.Time
	updatedAt time.Time
	messages  []models.Message
}

func (c *Conversation) snapshot() snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	msgs := make([]models.Message, len(c.messages))
	copy(msgs, c.messages)
	return snapshot{
		id:        c.id,
		title:     c.title,
		model:     c.model,
		createdAt: c.createdAt,
		updatedAt: c.updatedAt,
		messages:  msgs,
	}
}
