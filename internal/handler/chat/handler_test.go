package chat

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/acmenews/newschat/internal/config"
	chatmodel "github.com/acmenews/newschat/internal/model/chat"
	"github.com/acmenews/newschat/internal/model/news"
	"github.com/acmenews/newschat/internal/service/agent"
	"github.com/acmenews/newschat/internal/service/router"
	"github.com/acmenews/newschat/internal/service/session"
)

func setupRouter(t *testing.T) (*chi.Mux, *session.Service) {
	t.Helper()

	ctx := context.Background()
	routerSvc, err := router.NewService(ctx, nil)
	if err != nil {
		t.Fatalf("router.NewService err: %v", err)
	}

	agentSvc, err := agent.NewService(ctx, nil, news.NewMemoryStore(news.Seed()), routerSvc, config.AIConfig{})
	if err != nil {
		t.Fatalf("agent.NewService err: %v", err)
	}

	sessions := session.NewService()
	handler := New(agentSvc, sessions)

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r, sessions
}

func postChat(r http.Handler, body []byte, digest string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if digest != "" {
		req.Header.Set(DigestHeader, digest)
	}
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestChatStreamsAnswer(t *testing.T) {
	r, sessions := setupRouter(t)

	body, _ := json.Marshal(map[string]string{
		"question":  "Who won the marathon?",
		"thread_id": "thread-1",
	})
	resp := postChat(r, body, "")

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("expected text/plain response, got %q", ct)
	}
	if resp.Body.Len() == 0 {
		t.Fatal("expected a streamed answer body")
	}

	transcript, err := sessions.Transcript(context.Background(), "thread-1")
	if err != nil {
		t.Fatalf("Transcript err: %v", err)
	}
	if len(transcript) != 2 {
		t.Fatalf("expected user+assistant turns recorded, got %d", len(transcript))
	}
	if transcript[0].Sender != chatmodel.SenderUser || transcript[1].Sender != chatmodel.SenderAssistant {
		t.Fatalf("unexpected transcript senders: %+v", transcript)
	}
	if transcript[1].Content != resp.Body.String() {
		t.Fatal("recorded assistant turn does not match streamed body")
	}
}

func TestChatEmptyQuestion(t *testing.T) {
	r, sessions := setupRouter(t)

	body, _ := json.Marshal(map[string]string{
		"question":  "   ",
		"thread_id": "thread-1",
	})
	resp := postChat(r, body, "")

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if resp.Body.String() != "Please enter a question!" {
		t.Fatalf("unexpected reply %q", resp.Body.String())
	}

	if _, err := sessions.Transcript(context.Background(), "thread-1"); err == nil {
		t.Fatal("empty question must not create a thread")
	}
}

func TestChatMissingThreadID(t *testing.T) {
	r, _ := setupRouter(t)

	body, _ := json.Marshal(map[string]string{"question": "hello"})
	resp := postChat(r, body, "")

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestChatInvalidBody(t *testing.T) {
	r, _ := setupRouter(t)

	resp := postChat(r, []byte("{not json"), "")
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestChatDigestVerification(t *testing.T) {
	r, _ := setupRouter(t)

	body, _ := json.Marshal(map[string]string{
		"question":  "hello",
		"thread_id": "thread-1",
	})

	sum := sha256.Sum256(body)
	good := hex.EncodeToString(sum[:])

	if resp := postChat(r, body, good); resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for matching digest, got %d", resp.Code)
	}
	if resp := postChat(r, body, strings.Repeat("0", 64)); resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for digest mismatch, got %d", resp.Code)
	}
}
