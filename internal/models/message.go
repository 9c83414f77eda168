package models

import "time"

// Conversation roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one entry of the conversation log
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
	// Attachment names the file injected into this turn, if any
	Attachment string `json:"attachment,omitempty"`
	// Error marks an assistant notice produced by a failed request
	Error     bool      `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// IsUser reports whether the message was written by the user
func (m Message) IsUser() bool {
	return m.Role == RoleUser
}
