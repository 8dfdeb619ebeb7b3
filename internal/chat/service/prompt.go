package service

import (
	"encoding/json"
	"fmt"

	"bluepeak_backend/internal/chat/transport"
	"bluepeak_backend/platform/ai/openai"
)

const systemPromptTemplate = `You are a premium real-estate assistant for BluePeak Realty.
Answer in %s.
Use ONLY the provided listings context to recommend real properties (max 5). Never invent listings.
If there are no relevant listings, briefly ask for city, budget, and bedrooms. Stay under 120 words.
If the user wants to schedule a viewing, require lead details (name, email, phone) before confirming.
Keep responses concise, professional, and focused on the provided context.`

// buildMessages assembles the backend message list: system instruction,
// conversation history, then the shortlist context as a final grounding
// message.
func buildMessages(req transport.ChatRequest) []openai.Message {
	replyLanguage := "English"
	if req.Language == "sq" {
		replyLanguage = "Albanian"
	}

	messages := make([]openai.Message, 0, len(req.Messages)+2)
	messages = append(messages, openai.Message{
		Role:    "system",
		Content: fmt.Sprintf(systemPromptTemplate, replyLanguage),
	})
	for _, m := range req.Messages {
		messages = append(messages, openai.Message{Role: m.Role, Content: m.Content})
	}

	contextJSON, err := json.Marshal(req.Context)
	if err != nil {
		contextJSON = []byte("[]")
	}
	messages = append(messages, openai.Message{
		Role:    "user",
		Content: "Listings context (JSON):\n" + string(contextJSON),
	})

	return messages
}
