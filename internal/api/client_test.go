package api

import (
	"context"
	"errors"
	"testing"

	apierrors "github.com/RidhamVashishth/Chatbot-using-Gemini/internal/errors"
	"github.com/RidhamVashishth/Chatbot-using-Gemini/internal/models"
)

func TestNewClient_MissingAPIKey(t *testing.T) {
	for _, key := range []string{"", "  "} {
		_, err := NewClient(context.Background(), key)
		if !errors.Is(err, apierrors.ErrMissingAPIKey) {
			t.Errorf("NewClient(%q) error = %v, want ErrMissingAPIKey", key, err)
		}
	}
}

func TestNewClientWithBackend_Defaults(t *testing.T) {
	client := NewClientWithBackend(&MockBackend{})

	if client.GetModel() != models.DefaultModel {
		t.Errorf("GetModel() = %v, want %v", client.GetModel(), models.DefaultModel)
	}
	if client.SystemPrompt() != DefaultSystemPrompt {
		t.Error("expected default system prompt")
	}
	if client.temperature != nil {
		t.Error("temperature should be unset by default")
	}
}

func TestClientOptions(t *testing.T) {
	client := NewClientWithBackend(&MockBackend{},
		WithModel(models.Model25Pro),
		WithSystemPrompt("Be brief."),
		WithLogger(nil),
	)

	if client.GetModel() != models.Model25Pro {
		t.Errorf("GetModel() = %v, want %v", client.GetModel(), models.Model25Pro)
	}
	if client.SystemPrompt() != "Be brief." {
		t.Errorf("SystemPrompt() = %q", client.SystemPrompt())
	}
	if client.logger == nil {
		t.Error("a nil logger option must not clear the logger")
	}

	blank := NewClientWithBackend(&MockBackend{}, WithSystemPrompt("   "), WithModel(models.Model{}))
	if blank.SystemPrompt() != DefaultSystemPrompt {
		t.Error("a blank system prompt should keep the default")
	}
	if blank.GetModel() != models.DefaultModel {
		t.Error("an empty model should keep the default")
	}
}

func TestStartChat(t *testing.T) {
	client := NewClientWithBackend(&MockBackend{}, WithModel(models.Model20Flash))

	if s := client.StartChat(); s.GetModel() != models.Model20Flash {
		t.Errorf("StartChat() model = %v, want client default", s.GetModel())
	}
	if s := client.StartChat(models.Model15Pro); s.GetModel() != models.Model15Pro {
		t.Errorf("StartChat(pro) model = %v", s.GetModel())
	}

	a, b := client.StartChat(), client.StartChat()
	if a.Conversation().ID() == b.Conversation().ID() {
		t.Error("each session should get its own conversation")
	}
}

func TestClose(t *testing.T) {
	backend := &MockBackend{}
	client := NewClientWithBackend(backend)

	if err := client.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if !backend.Closed() || !client.IsClosed() {
		t.Error("Close should close the backend")
	}
	if err := client.Close(); err != nil {
		t.Errorf("second Close should be a no-op, got %v", err)
	}
}
