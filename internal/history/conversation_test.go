package history

import (
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/RidhamVashishth/Chatbot-using-Gemini/internal/models"
)

func TestNew(t *testing.T) {
	conv := New("gemini-1.5-flash")

	if _, err := uuid.Parse(conv.ID()); err != nil {
		t.Errorf("ID should be a UUID, got %q", conv.ID())
	}
	if conv.Model() != "gemini-1.5-flash" {
		t.Errorf("Model = %s, want gemini-1.5-flash", conv.Model())
	}
	if !strings.HasPrefix(conv.Title(), "Chat ") {
		t.Errorf("Title = %s, want default title", conv.Title())
	}
	if conv.Len() != 0 {
		t.Errorf("expected empty conversation, got %d messages", conv.Len())
	}
}

func TestConversation_Append(t *testing.T) {
	conv := New("test-model")

	conv.Append(
		models.Message{Role: models.RoleUser, Content: "Hello!", Attachment: "notes.pdf"},
		models.Message{Role: models.RoleAssistant, Content: "Hi there"},
	)

	msgs := conv.Messages()
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].Role != models.RoleUser || msgs[0].Content != "Hello!" || msgs[0].Attachment != "notes.pdf" {
		t.Errorf("unexpected first message: %+v", msgs[0])
	}
	if msgs[1].Timestamp.IsZero() {
		t.Error("Append should stamp messages")
	}
	if conv.UpdatedAt().Before(conv.CreatedAt()) {
		t.Error("UpdatedAt should not precede CreatedAt")
	}
}

func TestConversation_TitleFromFirstUserMessage(t *testing.T) {
	conv := New("test-model")
	conv.Append(models.Message{Role: models.RoleUser, Content: "What is Go programming?"})
	conv.Append(models.Message{Role: models.RoleUser, Content: "And Rust?"})

	if conv.Title() != "What is Go programming?" {
		t.Errorf("Title = %s, want What is Go programming?", conv.Title())
	}
}

func TestConversation_TitleTruncated(t *testing.T) {
	conv := New("test-model")
	long := strings.Repeat("é", 80)
	conv.Append(models.Message{Role: models.RoleUser, Content: long})

	want := strings.Repeat("é", maxTitleLen) + "..."
	if conv.Title() != want {
		t.Errorf("Title = %q, want %q", conv.Title(), want)
	}
}

func TestConversation_MessagesIsCopy(t *testing.T) {
	conv := New("test-model")
	conv.Append(models.Message{Role: models.RoleUser, Content: "original"})

	msgs := conv.Messages()
	msgs[0].Content = "mutated"

	if conv.Messages()[0].Content != "original" {
		t.Error("Messages() must return a copy")
	}
}

func TestConversation_LastReply(t *testing.T) {
	conv := New("test-model")

	if _, ok := conv.LastReply(); ok {
		t.Error("empty conversation has no reply")
	}

	conv.Append(
		models.Message{Role: models.RoleUser, Content: "q1"},
		models.Message{Role: models.RoleAssistant, Content: "a1"},
		models.Message{Role: models.RoleUser, Content: "q2"},
		models.Message{Role: models.RoleAssistant, Content: "Sorry, an error occurred: boom", Error: true},
	)

	reply, ok := conv.LastReply()
	if !ok || reply.Content != "a1" {
		t.Errorf("LastReply() = %q, %v; want a1, true", reply.Content, ok)
	}
}

func TestConversation_Reset(t *testing.T) {
	conv := New("test-model")
	oldID := conv.ID()
	conv.Append(models.Message{Role: models.RoleUser, Content: "hello"})

	conv.Reset()

	if conv.Len() != 0 {
		t.Errorf("expected empty log after reset, got %d", conv.Len())
	}
	if conv.ID() == oldID {
		t.Error("reset should start a new conversation ID")
	}
	if conv.Model() != "test-model" {
		t.Error("reset should keep the model")
	}
	if conv.Title() == "hello" {
		t.Error("reset should restore the default title")
	}
}

func TestConversation_SetModelAndTitle(t *testing.T) {
	conv := New("a")
	conv.SetModel("b")
	conv.SetTitle("Renamed")

	if conv.Model() != "b" {
		t.Errorf("Model = %s, want b", conv.Model())
	}
	if conv.Title() != "Renamed" {
		t.Errorf("Title = %s, want Renamed", conv.Title())
	}
}

func TestConversation_ConcurrentAccess(t *testing.T) {
	conv := New("test-model")

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			conv.Append(models.Message{Role: models.RoleUser, Content: "x"})
		}()
		go func() {
			defer wg.Done()
			_ = conv.Messages()
			_ = conv.ExportMarkdown(DefaultExportOptions())
		}()
	}
	wg.Wait()

	if conv.Len() != 10 {
		t.Errorf("expected 10 messages, got %d", conv.Len())
	}
}
