package api

import "github.com/RidhamVashishth/Chatbot-using-Gemini/internal/models"

// DefaultSystemPrompt grounds answers in the uploaded file and the conversation
const DefaultSystemPrompt = "You are an expert assistant. Your task is to answer the user's question " +
	"based ONLY on the provided context and conversation history. Do not use any external knowledge. " +
	"If the answer is not found in the context, you must state: " +
	"'I don't know, as the answer is not in the provided information.'"

// Section headers of an assembled prompt
const (
	ContextHeader  = "CONTEXT FROM UPLOADED FILE:"
	QuestionHeader = "USER'S CURRENT QUESTION:"
)

// BuildPrompt assembles the parts of one turn in order: system instruction,
// the attachment (when present) under ContextHeader, then the question under
// QuestionHeader. The question is passed verbatim. An attachment with no
// content contributes nothing.
func BuildPrompt(systemPrompt string, att *models.Attachment, question string) []models.Part {
	parts := make([]models.Part, 0, 5)
	parts = append(parts, models.TextPart(systemPrompt))

	if att.HasContent() {
		parts = append(parts, models.TextPart(ContextHeader), att.Part())
	}

	parts = append(parts,
		models.TextPart(QuestionHeader),
		models.TextPart(question),
	)
	return parts
}
