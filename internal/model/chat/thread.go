package chat

import "time"

// Thread captures a transient anonymous conversation. The widget derives the
// thread identifier client-side at startup, so threads appear on the server
// the first time a message for them arrives.
type Thread struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}
