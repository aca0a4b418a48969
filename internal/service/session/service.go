package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/acmenews/newschat/internal/model/chat"
)

var (
	ErrThreadRequired = errors.New("thread id is required")
	ErrThreadNotFound = errors.New("thread not found")
)

// Service keeps per-thread conversation state in memory. Threads are created
// lazily: the widget derives its thread id at page load and the server first
// sees it on the opening message, so there is no explicit create call.
type Service struct {
	mu       sync.RWMutex
	threads  map[string]chat.Thread
	messages map[string][]chat.Message
}

// NewService bootstraps the in-memory store.
func NewService() *Service {
	return &Service{
		threads:  make(map[string]chat.Thread),
		messages: make(map[string][]chat.Message),
	}
}

// Touch ensures the thread exists, creating it on first use.
func (s *Service) Touch(_ context.Context, threadID string) (chat.Thread, error) {
	if threadID == "" {
		return chat.Thread{}, ErrThreadRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if thread, ok := s.threads[threadID]; ok {
		return thread, nil
	}

	thread := chat.Thread{ID: threadID, CreatedAt: time.Now().UTC()}
	s.threads[threadID] = thread
	s.messages[threadID] = make([]chat.Message, 0, 16)
	return thread, nil
}

// Append records a message on its thread, creating the thread if needed.
func (s *Service) Append(_ context.Context, message chat.Message) error {
	if message.ThreadID == "" {
		return ErrThreadRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.threads[message.ThreadID]; !ok {
		s.threads[message.ThreadID] = chat.Thread{ID: message.ThreadID, CreatedAt: time.Now().UTC()}
		s.messages[message.ThreadID] = make([]chat.Message, 0, 16)
	}

	message.ID = uuid.NewString()
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now().UTC()
	}

	s.messages[message.ThreadID] = append(s.messages[message.ThreadID], message)
	return nil
}

// Transcript returns a copy of every stored message for the thread.
func (s *Service) Transcript(_ context.Context, threadID string) ([]chat.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	messages, ok := s.messages[threadID]
	if !ok {
		return nil, ErrThreadNotFound
	}

	copied := make([]chat.Message, len(messages))
	copy(copied, messages)
	return copied, nil
}

// Recent returns up to n of the latest messages for the thread. An unknown
// thread yields an empty history rather than an error so a fresh widget can
// ask its first question without a setup round trip.
func (s *Service) Recent(_ context.Context, threadID string, n int) []chat.Message {
	if n <= 0 {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	messages, ok := s.messages[threadID]
	if !ok {
		return nil
	}

	start := 0
	if len(messages) > n {
		start = len(messages) - n
	}

	copied := make([]chat.Message, len(messages)-start)
	copy(copied, messages[start:])
	return copied
}
