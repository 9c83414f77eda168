package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/RidhamVashishth/Chatbot-using-Gemini/internal/models"
)

// ExportFormat represents the format for exporting conversations
type ExportFormat string

const (
	ExportFormatMarkdown ExportFormat = "markdown"
	ExportFormatJSON     ExportFormat = "json"
)

// ExportOptions configures how conversations are exported
type ExportOptions struct {
	Format             ExportFormat
	IncludeErrors      bool // Include "Sorry, an error occurred" notices
	IncludeAttachments bool // Note the file injected into each user turn
}

// DefaultExportOptions returns sensible defaults for export
func DefaultExportOptions() ExportOptions {
	return ExportOptions{
		Format:             ExportFormatMarkdown,
		IncludeErrors:      true,
		IncludeAttachments: true,
	}
}

// FormatFromPath picks the export format from a file extension
func FormatFromPath(path string) ExportFormat {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return ExportFormatJSON
	}
	return ExportFormatMarkdown
}

// ExportMarkdown renders the conversation as Markdown
func (c *Conversation) ExportMarkdown(opts ExportOptions) string {
	snap := c.snapshot()

	var sb strings.Builder

	// Header
	sb.WriteString("# ")
	sb.WriteString(snap.title)
	sb.WriteString("\n\n")

	// Metadata
	sb.WriteString("**Model:** ")
	sb.WriteString(snap.model)
	sb.WriteString("\n")
	sb.WriteString("**Created:** ")
	sb.WriteString(snap.createdAt.Format("2006-01-02 15:04:05"))
	sb.WriteString("\n")
	sb.WriteString("**Updated:** ")
	sb.WriteString(snap.updatedAt.Format("2006-01-02 15:04:05"))
	sb.WriteString("\n")

	msgs := snap.messages
	if !opts.IncludeErrors {
		msgs = withoutErrors(msgs)
	}
	sb.WriteString(fmt.Sprintf("**Messages:** %d", len(msgs)))
	sb.WriteString("\n\n---\n\n")

	for i, msg := range msgs {
		role := "User"
		if !msg.IsUser() {
			role = "Assistant"
		}

		sb.WriteString("## ")
		sb.WriteString(role)
		if !msg.Timestamp.IsZero() {
			sb.WriteString(" (")
			sb.WriteString(msg.Timestamp.Format("15:04:05"))
			sb.WriteString(")")
		}
		sb.WriteString("\n\n")

		if opts.IncludeAttachments && msg.Attachment != "" {
			sb.WriteString("> 📎 ")
			sb.WriteString(msg.Attachment)
			sb.WriteString("\n\n")
		}

		sb.WriteString(msg.Content)
		sb.WriteString("\n")

		if i < len(msgs)-1 {
			sb.WriteString("\n---\n\n")
		}
	}

	return sb.String()
}

type exportMessage struct {
	Role       string    `json:"role"`
	Content    string    `json:"content"`
	Attachment string    `json:"attachment,omitempty"`
	Error      bool      `json:"error,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

type exportConversation struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Model     string          `json:"model"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	Messages  []exportMessage `json:"messages"`
}

// ExportJSON renders the conversation as indented JSON
func (c *Conversation) ExportJSON(opts ExportOptions) ([]byte, error) {
	snap := c.snapshot()

	msgs := snap.messages
	if !opts.IncludeErrors {
		msgs = withoutErrors(msgs)
	}

	export := exportConversation{
		ID:        snap.id,
		Title:     snap.title,
		Model:     snap.model,
		CreatedAt: snap.createdAt,
		UpdatedAt: snap.updatedAt,
		Messages:  make([]exportMessage, len(msgs)),
	}
	for i, msg := range msgs {
		export.Messages[i] = exportMessage{
			Role:      msg.Role,
			Content:   msg.Content,
			Error:     msg.Error,
			Timestamp: msg.Timestamp,
		}
		if opts.IncludeAttachments {
			export.Messages[i].Attachment = msg.Attachment
		}
	}

	return json.MarshalIndent(export, "", "  ")
}

// SaveTranscript writes the conversation to path, choosing the format from the extension
func SaveTranscript(c *Conversation, path string) error {
	opts := DefaultExportOptions()
	opts.Format = FormatFromPath(path)

	var data []byte
	switch opts.Format {
	case ExportFormatJSON:
		b, err := c.ExportJSON(opts)
		if err != nil {
			return fmt.Errorf("failed to encode transcript: %w", err)
		}
		data = b
	default:
		data = []byte(c.ExportMarkdown(opts))
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write transcript: %w", err)
	}
	return nil
}

func withoutErrors(msgs []models.Message) []models.Message {
	out := make([]models.Message, 0, len(msgs))
	for _, m := range msgs {
		if !m.Error {
			out = append(out, m)
		}
	}
	return out
}
