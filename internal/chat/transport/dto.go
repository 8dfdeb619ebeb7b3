package transport

import (
	"strings"

	listings "bluepeak_backend/internal/listings/transport"
)

// ChatMessage is a single conversation message.
type ChatMessage struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required"`
}

// Lead carries user-supplied contact details. A lead is complete iff all
// three fields are non-empty.
type Lead struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Complete reports whether name, email, and phone are all present.
func (l *Lead) Complete() bool {
	if l == nil {
		return false
	}
	return strings.TrimSpace(l.Name) != "" &&
		strings.TrimSpace(l.Email) != "" &&
		strings.TrimSpace(l.Phone) != ""
}

// ChatRequest is one conversation turn. The server holds no state between
// turns; everything needed must arrive in the request. Lead, context, and
// conversationId may all be absent.
type ChatRequest struct {
	ConversationID string                    `json:"conversationId"`
	Messages       []ChatMessage             `json:"messages" validate:"dive"`
	Language       string                    `json:"language" validate:"omitempty,oneof=en sq"`
	Lead           *Lead                     `json:"lead,omitempty"`
	Context        []listings.ShortlistEntry `json:"context"`
}

// LastUserText returns the content of the most recent message, or "".
func (r *ChatRequest) LastUserText() string {
	if len(r.Messages) == 0 {
		return ""
	}
	return r.Messages[len(r.Messages)-1].Content
}

// ChatResponse is the reply to one conversation turn.
type ChatResponse struct {
	ConversationID string                    `json:"conversationId"`
	Reply          string                    `json:"reply"`
	Properties     []listings.ShortlistEntry `json:"properties"`
	RequiresLead   bool                      `json:"requiresLead"`
}
