package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"bluepeak_backend/internal/chat/transport"
	listings "bluepeak_backend/internal/listings/transport"
	"bluepeak_backend/platform/ai/openai"
	"bluepeak_backend/platform/apperr"
	"bluepeak_backend/platform/logger"
)

// stubCompleter records the messages it receives and returns a canned result.
type stubCompleter struct {
	text     string
	err      error
	received []openai.Message
}

func (s *stubCompleter) Complete(_ context.Context, messages []openai.Message) (string, error) {
	s.received = messages
	return s.text, s.err
}

func userTurn(text string) transport.ChatRequest {
	return transport.ChatRequest{
		Messages: []transport.ChatMessage{{Role: "user", Content: text}},
	}
}

func TestRespond_FallbackMode_UsesTemplatedReply(t *testing.T) {
	svc := New(nil, logger.New("development"))

	req := userTurn("show me apartments")
	req.Context = []listings.ShortlistEntry{
		{ID: "p1", Title: "Sunny Apartment", Price: 95000, Currency: "USD", Location: "Prishtina, Kosovo", Type: "Apartment", Bedrooms: 2},
	}

	resp, err := svc.Respond(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(resp.Reply, "Here are a few matches from the live listings:") {
		t.Fatalf("expected templated reply, got %q", resp.Reply)
	}
	if len(resp.Properties) != 1 || resp.Properties[0].ID != "p1" {
		t.Fatalf("expected shortlist echoed back, got %v", resp.Properties)
	}
}

func TestRespond_GeneratesConversationIDWhenAbsent(t *testing.T) {
	svc := New(nil, logger.New("development"))

	resp, err := svc.Respond(context.Background(), userTurn("hello"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ConversationID == "" {
		t.Fatal("expected a generated conversation id")
	}
}

func TestRespond_EchoesCallerConversationID(t *testing.T) {
	svc := New(nil, logger.New("development"))

	req := userTurn("hello")
	req.ConversationID = "conv-42"

	resp, err := svc.Respond(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ConversationID != "conv-42" {
		t.Fatalf("expected conversation id echoed, got %q", resp.ConversationID)
	}
}

func TestRespond_NilContext_YieldsEmptyPropertiesSlice(t *testing.T) {
	svc := New(nil, logger.New("development"))

	resp, err := svc.Respond(context.Background(), userTurn("hello"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Properties == nil {
		t.Fatal("properties must be an empty slice, not nil")
	}
	if len(resp.Properties) != 0 {
		t.Fatalf("expected no properties, got %d", len(resp.Properties))
	}
}

func TestRespond_SetsRequiresLeadOnBookingIntent(t *testing.T) {
	svc := New(nil, logger.New("development"))

	resp, err := svc.Respond(context.Background(), userTurn("I want to book a viewing"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.RequiresLead {
		t.Fatal("expected requiresLead for booking intent without lead")
	}

	req := userTurn("I want to book a viewing")
	req.Lead = &transport.Lead{Name: "Ana", Email: "ana@example.com", Phone: "+38344111222"}
	resp, err = svc.Respond(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.RequiresLead {
		t.Fatal("expected requiresLead false once lead is complete")
	}
}

func TestRespond_GenerativePath_ReturnsBackendText(t *testing.T) {
	completer := &stubCompleter{text: "The Sunny Apartment fits your budget."}
	svc := New(completer, logger.New("development"))

	req := userTurn("2 bedroom apartment in Prishtina")
	req.Context = []listings.ShortlistEntry{
		{ID: "p1", Title: "Sunny Apartment", Price: 95000, Currency: "USD", Location: "Prishtina, Kosovo", Type: "Apartment", Bedrooms: 2},
	}

	resp, err := svc.Respond(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Reply != "The Sunny Apartment fits your budget." {
		t.Fatalf("unexpected reply: %q", resp.Reply)
	}

	// system prompt + one history message + grounding message
	if len(completer.received) != 3 {
		t.Fatalf("expected 3 backend messages, got %d", len(completer.received))
	}
	if completer.received[0].Role != "system" {
		t.Fatalf("expected system message first, got role %q", completer.received[0].Role)
	}
	last := completer.received[len(completer.received)-1]
	if last.Role != "user" || !strings.HasPrefix(last.Content, "Listings context (JSON):\n") {
		t.Fatalf("expected trailing grounding message, got %+v", last)
	}
	if !strings.Contains(last.Content, `"Sunny Apartment"`) {
		t.Fatalf("grounding message missing shortlist data: %q", last.Content)
	}
}

func TestRespond_GenerativePath_AlbanianSystemPrompt(t *testing.T) {
	completer := &stubCompleter{text: "Po."}
	svc := New(completer, logger.New("development"))

	req := userTurn("pershendetje")
	req.Language = "sq"

	if _, err := svc.Respond(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(completer.received[0].Content, "Answer in Albanian.") {
		t.Fatalf("expected Albanian instruction, got %q", completer.received[0].Content)
	}
}

func TestRespond_EmptyBackendText_SubstitutesApology(t *testing.T) {
	svc := New(&stubCompleter{text: ""}, logger.New("development"))

	resp, err := svc.Respond(context.Background(), userTurn("hello"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Reply != "Sorry, something went wrong." {
		t.Fatalf("expected apology, got %q", resp.Reply)
	}

	req := userTurn("pershendetje")
	req.Language = "sq"
	resp, err = New(&stubCompleter{text: ""}, logger.New("development")).Respond(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Reply != "Na fal, pati një problem." {
		t.Fatalf("expected Albanian apology, got %q", resp.Reply)
	}
}

func TestRespond_BackendError_MapsToUnavailable(t *testing.T) {
	svc := New(&stubCompleter{err: errors.New("connection refused")}, logger.New("development"))

	_, err := svc.Respond(context.Background(), userTurn("hello"))
	if err == nil {
		t.Fatal("expected error from backend failure")
	}

	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("expected apperr.Error, got %T", err)
	}
	if appErr.Kind != apperr.KindUnavailable {
		t.Fatalf("expected KindUnavailable, got %v", appErr.Kind)
	}
}
