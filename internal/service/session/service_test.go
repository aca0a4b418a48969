package session_test

import (
	"context"
	"testing"

	"github.com/acmenews/newschat/internal/model/chat"
	"github.com/acmenews/newschat/internal/service/session"
)

func TestTouchCreatesThreadOnce(t *testing.T) {
	svc := session.NewService()
	ctx := context.Background()

	first, err := svc.Touch(ctx, "thread-1")
	if err != nil {
		t.Fatalf("Touch err: %v", err)
	}

	second, err := svc.Touch(ctx, "thread-1")
	if err != nil {
		t.Fatalf("Touch err: %v", err)
	}

	if first.CreatedAt != second.CreatedAt {
		t.Fatal("Touch recreated an existing thread")
	}
}

func TestTouchRequiresThreadID(t *testing.T) {
	svc := session.NewService()
	if _, err := svc.Touch(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty thread id")
	}
}

func TestAppendAndTranscript(t *testing.T) {
	svc := session.NewService()
	ctx := context.Background()

	msgs := []chat.Message{
		{ThreadID: "t", Sender: chat.SenderUser, Content: "hello"},
		{ThreadID: "t", Sender: chat.SenderAssistant, Content: "hi"},
	}
	for _, m := range msgs {
		if err := svc.Append(ctx, m); err != nil {
			t.Fatalf("Append err: %v", err)
		}
	}

	got, err := svc.Transcript(ctx, "t")
	if err != nil {
		t.Fatalf("Transcript err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(got))
	}
	if got[0].Content != "hello" || got[1].Content != "hi" {
		t.Fatalf("unexpected transcript order: %+v", got)
	}
	if got[0].ID == "" || got[0].CreatedAt.IsZero() {
		t.Fatal("expected id and timestamp to be assigned")
	}
}

func TestTranscriptUnknownThread(t *testing.T) {
	svc := session.NewService()
	if _, err := svc.Transcript(context.Background(), "missing"); err == nil {
		t.Fatal("expected error for unknown thread")
	}
}

func TestRecentBounded(t *testing.T) {
	svc := session.NewService()
	ctx := context.Background()

	for _, content := range []string{"a", "b", "c", "d"} {
		if err := svc.Append(ctx, chat.Message{ThreadID: "t", Sender: chat.SenderUser, Content: content}); err != nil {
			t.Fatalf("Append err: %v", err)
		}
	}

	recent := svc.Recent(ctx, "t", 2)
	if len(recent) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(recent))
	}
	if recent[0].Content != "c" || recent[1].Content != "d" {
		t.Fatalf("expected latest messages, got %+v", recent)
	}
}

func TestRecentUnknownThreadIsEmpty(t *testing.T) {
	svc := session.NewService()
	if got := svc.Recent(context.Background(), "missing", 5); len(got) != 0 {
		t.Fatalf("expected empty history, got %d messages", len(got))
	}
}
