package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"bluepeak_backend/internal/chat/service"
	"bluepeak_backend/internal/chat/transport"
	"bluepeak_backend/platform/logger"
	"bluepeak_backend/platform/validator"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.New(nil, logger.New("development"))
	h := New(svc, validator.New())

	r := gin.New()
	r.POST("/api/chat", h.Chat)
	return r
}

func postChat(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestChat_MinimalRequest_Succeeds(t *testing.T) {
	r := newTestRouter()

	w := postChat(t, r, `{"messages":[{"role":"user","content":"hello"}]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp transport.ChatResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.ConversationID == "" {
		t.Fatal("expected a conversation id")
	}
	if resp.Reply == "" {
		t.Fatal("expected a non-empty reply")
	}
	if resp.Properties == nil {
		t.Fatal("expected properties to serialize as an array")
	}
	if resp.RequiresLead {
		t.Fatal("plain greeting must not require a lead")
	}
}

func TestChat_BookingTurnWithContext_RoundTrip(t *testing.T) {
	r := newTestRouter()

	body := `{
		"conversationId": "conv-7",
		"language": "sq",
		"messages": [{"role":"user","content":"rezervo nje vizite"}],
		"context": [{"id":"p1","title":"Sunny Apartment","price":95000,"currency":"USD","location":"Prishtina, Kosovo","type":"Apartment","bedrooms":2}]
	}`

	w := postChat(t, r, body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp transport.ChatResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.ConversationID != "conv-7" {
		t.Fatalf("expected conversation id echoed, got %q", resp.ConversationID)
	}
	if !resp.RequiresLead {
		t.Fatal("booking turn without lead must require a lead")
	}
	if len(resp.Properties) != 1 || resp.Properties[0].ID != "p1" {
		t.Fatalf("expected context echoed as properties, got %v", resp.Properties)
	}
	if !strings.Contains(resp.Reply, "Sunny Apartment") {
		t.Fatalf("expected grounded reply, got %q", resp.Reply)
	}
}

func TestChat_MalformedJSON_Returns400(t *testing.T) {
	r := newTestRouter()

	w := postChat(t, r, `{"messages": [`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestChat_InvalidRole_Returns400(t *testing.T) {
	r := newTestRouter()

	w := postChat(t, r, `{"messages":[{"role":"narrator","content":"hello"}]}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestChat_InvalidLanguage_Returns400(t *testing.T) {
	r := newTestRouter()

	w := postChat(t, r, `{"language":"fr","messages":[{"role":"user","content":"bonjour"}]}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
