package chat

import "time"

// Sender values recorded on transcript messages.
const (
	SenderUser      = "user"
	SenderAssistant = "assistant"
)

// Message is one turn of a conversation, kept per thread for history.
type Message struct {
	ID        string    `json:"id"`
	ThreadID  string    `json:"threadId"`
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
