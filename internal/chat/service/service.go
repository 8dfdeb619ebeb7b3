// Package service orchestrates one chat conversation turn: lead-gate
// evaluation, generative or templated response, and shortlist pass-through.
package service

import (
	"context"

	"github.com/google/uuid"

	"bluepeak_backend/internal/chat/transport"
	listings "bluepeak_backend/internal/listings/transport"
	"bluepeak_backend/platform/ai/openai"
	"bluepeak_backend/platform/apperr"
	"bluepeak_backend/platform/logger"
)

// maxShortlist caps the number of listings surfaced per turn.
const maxShortlist = 5

// Completer is the generative backend contract: take an ordered message list,
// return assistant text. Any backend satisfying it can be substituted.
type Completer interface {
	Complete(ctx context.Context, messages []openai.Message) (string, error)
}

// Service orchestrates chat turns. A nil completer means no generative
// backend is configured and every turn uses the templated fallback.
type Service struct {
	completer Completer
	log       *logger.Logger
}

// New creates a new chat service.
func New(completer Completer, log *logger.Logger) *Service {
	return &Service{completer: completer, log: log}
}

// Respond handles one conversation turn. The server keeps no state between
// turns: the shortlist context is caller-supplied and echoed back, and a
// conversation id is generated only when the caller didn't send one.
func (s *Service) Respond(ctx context.Context, req transport.ChatRequest) (transport.ChatResponse, error) {
	if req.Language == "" {
		req.Language = "en"
	}

	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = uuid.NewString()
	}

	lastUser := req.LastUserText()
	requiresLead := RequiresLead(lastUser, req.Lead)

	var reply string
	generative := s.completer != nil
	if generative {
		text, err := s.completer.Complete(ctx, buildMessages(req))
		if err != nil {
			s.log.ChatBackendError(conversationID, err)
			return transport.ChatResponse{}, apperr.Wrap(apperr.KindUnavailable, "chat service error", err).WithOp("chat.Respond")
		}
		if text == "" {
			text = stringsFor(req.Language).apology
		}
		reply = text
	} else {
		reply = FallbackReply(req.Language, req.Context, lastUser)
	}

	properties := req.Context
	if properties == nil {
		properties = []listings.ShortlistEntry{}
	}

	s.log.ChatTurn(conversationID, req.Language, generative, len(properties), requiresLead)

	return transport.ChatResponse{
		ConversationID: conversationID,
		Reply:          reply,
		Properties:     properties,
		RequiresLead:   requiresLead,
	}, nil
}
