package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

type stubNotifier struct {
	err      error
	email    string
	question string
	calls    int
}

func (n *stubNotifier) Notify(_ context.Context, email, question string) error {
	n.calls++
	n.email = email
	n.question = question
	return n.err
}

func postContact(t *testing.T, notifier Notifier, payload map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	r := chi.NewRouter()
	New(notifier).RegisterRoutes(r)

	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/contact", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestSubmitNotifies(t *testing.T) {
	notifier := &stubNotifier{}
	resp := postContact(t, notifier, map[string]string{
		"email":    "reader@example.com",
		"question": "How do I subscribe?",
	})

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if notifier.calls != 1 {
		t.Fatalf("expected one notification, got %d", notifier.calls)
	}
	if notifier.email != "reader@example.com" || notifier.question != "How do I subscribe?" {
		t.Fatalf("unexpected notification content: %+v", notifier)
	}
	if !strings.Contains(resp.Body.String(), "Thank you") {
		t.Fatalf("unexpected body %q", resp.Body.String())
	}
}

func TestSubmitNotifyFailureStillAnswers200(t *testing.T) {
	notifier := &stubNotifier{err: errors.New("topic unavailable")}
	resp := postContact(t, notifier, map[string]string{
		"email":    "reader@example.com",
		"question": "hello",
	})

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "Failure") {
		t.Fatalf("expected failure message, got %q", resp.Body.String())
	}
}

func TestSubmitMissingFields(t *testing.T) {
	cases := []map[string]string{
		{"email": "reader@example.com"},
		{"question": "hello"},
		{},
	}

	for _, payload := range cases {
		notifier := &stubNotifier{}
		resp := postContact(t, notifier, payload)
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("payload %+v: expected 400, got %d", payload, resp.Code)
		}
		if notifier.calls != 0 {
			t.Fatalf("payload %+v: notifier must not run", payload)
		}
	}
}
