package api

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/RidhamVashishth/Chatbot-using-Gemini/internal/models"
)

// Upstream role names
const (
	genaiRoleUser  = "user"
	genaiRoleModel = "model"
)

// genaiBackend streams chats through the Gemini API SDK
type genaiBackend struct {
	client *genai.Client
}

func newGenaiBackend(ctx context.Context, apiKey string) (*genaiBackend, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini init: %w", err)
	}
	return &genaiBackend{client: client}, nil
}

func (b *genaiBackend) StreamChat(ctx context.Context, req *ChatRequest, onChunk func(string)) (string, error) {
	model := b.client.GenerativeModel(req.Model)
	if req.Temperature != nil {
		model.SetTemperature(*req.Temperature)
	}

	cs := model.StartChat()
	cs.History = toContents(req.History)

	iter := cs.SendMessageStream(ctx, toGenaiParts(req.Parts)...)

	var sb strings.Builder
	for {
		resp, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return sb.String(), classifyError(err)
		}

		for _, text := range responseTexts(resp) {
			sb.WriteString(text)
			if onChunk != nil {
				onChunk(text)
			}
		}
	}

	return sb.String(), nil
}

func (b *genaiBackend) Close() error {
	return b.client.Close()
}

// toContents maps the conversation log onto upstream roles
func toContents(history []models.Message) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		role := genaiRoleModel
		if msg.IsUser() {
			role = genaiRoleUser
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(msg.Content)},
		})
	}
	return contents
}

func toGenaiParts(parts []models.Part) []genai.Part {
	out := make([]genai.Part, 0, len(parts))
	for _, p := range parts {
		if p.IsBlob() {
			out = append(out, genai.Blob{MIMEType: p.MIMEType, Data: p.Data})
			continue
		}
		out = append(out, genai.Text(p.Text))
	}
	return out
}

// responseTexts returns the text parts of the first candidate
func responseTexts(resp *genai.GenerateContentResponse) []string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil
	}

	var texts []string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok && text != "" {
			texts = append(texts, string(text))
		}
	}
	return texts
}
