package utils

import (
	"io"
	"net/http"
)

// SetupStreamHeaders prepares a response for incremental plain-text delivery.
func SetupStreamHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("X-Content-Type-Options", "nosniff")
}

// WriteChunk writes one chunk of a streamed body and flushes it to the client
// immediately so the consumer can render it before the stream finishes.
func WriteChunk(w http.ResponseWriter, flusher http.Flusher, chunk string) error {
	if chunk == "" {
		return nil
	}
	if _, err := io.WriteString(w, chunk); err != nil {
		return err
	}
	flusher.Flush()
	return nil
}
